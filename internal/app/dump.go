package app

import (
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/go-packaging-service/internal/domain/packaging"
)

type productDump struct {
	ID     string `yaml:"id"`
	SKU    string `yaml:"sku"`
	Weight string `yaml:"weight"`
	Price  string `yaml:"price"`
}

type packageDump struct {
	Weight   string        `yaml:"weight"`
	Products []productDump `yaml:"products"`
}

type descriptorDump struct {
	ID         string `yaml:"id"`
	AdminLabel string `yaml:"admin_label"`
}

// dumpInvocation renders the value returned by packageProducts under the
// report header.
func dumpInvocation(packages []packaging.Package) (string, error) {
	view := make([]packageDump, 0, len(packages))
	for _, p := range packages {
		pd := packageDump{
			Weight:   p.Weight().String(),
			Products: make([]productDump, 0, len(p.Products)),
		}
		for _, prod := range p.Products {
			pd.Products = append(pd.Products, productDump{
				ID:     prod.ID.String(),
				SKU:    prod.SKU,
				Weight: prod.Weight.String(),
				Price:  prod.Price.String(),
			})
		}
		view = append(view, pd)
	}

	var b strings.Builder
	b.WriteString(packaging.ReportHeader)
	b.WriteByte('\n')
	if err := encodeYAML(&b, view); err != nil {
		return "", err
	}
	return b.String(), nil
}

func dumpDescriptors(descriptors []packaging.Descriptor) (string, error) {
	view := make([]descriptorDump, 0, len(descriptors))
	for _, d := range descriptors {
		view = append(view, descriptorDump(d))
	}
	var b strings.Builder
	if err := encodeYAML(&b, view); err != nil {
		return "", err
	}
	return b.String(), nil
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
