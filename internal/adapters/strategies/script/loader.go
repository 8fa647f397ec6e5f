// Package script loads packaging strategies written in JavaScript and runs
// them on the goja runtime.
//
// A script exports its label and packaging function through module.exports:
//
//	module.exports = {
//	  adminLabel: "Heaviest first",
//	  packageProducts(products) {
//	    return [products.map((p) => p.id)];
//	  },
//	};
//
// products is an array of {id, sku, weight, price} objects with decimals
// encoded as strings. The result is an array of packages, each an array of
// product ids.
package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dop251/goja"

	"github.com/jsamuelsen11/go-packaging-service/internal/adapters/strategies"
	"github.com/jsamuelsen11/go-packaging-service/internal/domain/packaging"
)

const (
	exportLabel    = "adminLabel"
	exportFunction = "packageProducts"
)

// ErrExportMissing is returned when a script lacks a required export.
var ErrExportMissing = errors.New("script export missing")

// ErrExportsNotObject is returned when module.exports is not an object.
var ErrExportsNotObject = errors.New("module exports must be an object")

// Module is a compiled strategy script.
type Module struct {
	ID         string
	AdminLabel string
	Path       string
	Program    *goja.Program
}

// Descriptor returns the registry descriptor for m.
func (m *Module) Descriptor() packaging.Descriptor {
	return packaging.Descriptor{ID: m.ID, AdminLabel: m.AdminLabel}
}

// LoadDir compiles every .js file in dir, sorted by file name. A missing
// directory yields no modules.
func LoadDir(ctx context.Context, dir string) ([]*Module, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("script loader: read directory %q: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	modules := make([]*Module, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("script loader: %w", err)
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".js") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		// #nosec G304 -- path comes from os.ReadDir of the configured scripts directory.
		source, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("script loader: read %q: %w", path, err)
		}
		id := strings.ToLower(strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
		m, err := Compile(id, path, string(source))
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, nil
}

// Compile compiles source and reads its admin label. The program is run once
// in a throwaway runtime to validate its exports.
func Compile(id, path, source string) (*Module, error) {
	prog, err := goja.Compile(path, source, true)
	if err != nil {
		return nil, fmt.Errorf("script loader: compile %q: %w", path, err)
	}

	rt := goja.New()
	exports, err := runModule(rt, prog, slog.New(slog.DiscardHandler))
	if err != nil {
		return nil, fmt.Errorf("script loader: %s: %w", path, err)
	}
	if _, ok := goja.AssertFunction(exports.Get(exportFunction)); !ok {
		return nil, fmt.Errorf("script loader: %s: %w: %s", path, ErrExportMissing, exportFunction)
	}

	label := id
	if v := exports.Get(exportLabel); v != nil && !goja.IsUndefined(v) && !goja.IsNull(v) {
		label = v.String()
	}

	return &Module{ID: id, AdminLabel: label, Path: path, Program: prog}, nil
}

// Register adds every module to r. Each Instance call builds a new runtime.
func Register(r strategies.Registrar, modules []*Module, logger *slog.Logger) error {
	for _, m := range modules {
		if err := r.Register(m.Descriptor(), func() (packaging.Strategy, error) {
			return NewStrategy(m, logger)
		}); err != nil {
			return fmt.Errorf("registering script %s: %w", m.Path, err)
		}
	}
	return nil
}

func runModule(rt *goja.Runtime, prog *goja.Program, logger *slog.Logger) (*goja.Object, error) {
	module := rt.NewObject()
	exports := rt.NewObject()
	if err := module.Set("exports", exports); err != nil {
		return nil, fmt.Errorf("module init: %w", err)
	}
	if err := rt.Set("exports", exports); err != nil {
		return nil, fmt.Errorf("module init: %w", err)
	}
	if err := rt.Set("module", module); err != nil {
		return nil, fmt.Errorf("module init: %w", err)
	}
	if err := rt.Set("console", newConsole(rt, logger)); err != nil {
		return nil, fmt.Errorf("module init: %w", err)
	}

	if _, err := rt.RunProgram(prog); err != nil {
		return nil, fmt.Errorf("module run: %w", err)
	}

	v := module.Get("exports")
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, ErrExportsNotObject
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil, ErrExportsNotObject
	}
	return obj, nil
}

// newConsole bridges console.* to the service logger.
func newConsole(rt *goja.Runtime, logger *slog.Logger) *goja.Object {
	console := rt.NewObject()
	bind := func(level slog.Level) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			parts := make([]string, 0, len(call.Arguments))
			for _, arg := range call.Arguments {
				parts = append(parts, arg.String())
			}
			logger.Log(context.Background(), level, strings.Join(parts, " "), slog.String("source", "script"))
			return goja.Undefined()
		}
	}
	_ = console.Set("log", bind(slog.LevelInfo))
	_ = console.Set("info", bind(slog.LevelInfo))
	_ = console.Set("debug", bind(slog.LevelDebug))
	_ = console.Set("warn", bind(slog.LevelWarn))
	_ = console.Set("error", bind(slog.LevelError))
	return console
}
