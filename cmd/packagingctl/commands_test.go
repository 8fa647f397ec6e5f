package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/go-packaging-service/internal/domain"
	"github.com/jsamuelsen11/go-packaging-service/internal/domain/packaging"
	"github.com/jsamuelsen11/go-packaging-service/internal/ports"
	"github.com/jsamuelsen11/go-packaging-service/mocks"
)

// execute runs the CLI against svc and returns stdout.
func execute(t *testing.T, svc ports.PackagingDebugService, args ...string) (string, error) {
	t.Helper()

	closed := false
	open := func(*cobra.Command, globalOptions) (ports.PackagingDebugService, func(), error) {
		return svc, func() { closed = true }, nil
	}

	root := newRootCmd(open)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(t.Context())
	if err == nil && !closed {
		t.Error("cleanup was not called")
	}
	return out.String(), err
}

func testDescriptors() []packaging.Descriptor {
	return []packaging.Descriptor{
		{ID: "fast", AdminLabel: "Fast Shipping"},
		{ID: "cheap", AdminLabel: "Cheapest"},
	}
}

func TestStrategiesCmd(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockPackagingDebugService(t)
	svc.EXPECT().ListStrategies(mock.Anything).Return(testDescriptors(), nil)

	out, err := execute(t, svc, "strategies")
	if err != nil {
		t.Fatalf("strategies error = %v", err)
	}

	want := "ID     LABEL\nfast   Fast Shipping\ncheap  Cheapest\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestFormCmd_MarksDefault(t *testing.T) {
	t.Parallel()

	form := packaging.BuildSelectionForm(testDescriptors(), "cheap", true)
	form.Operations = "- id: fast\n"

	svc := mocks.NewMockPackagingDebugService(t)
	svc.EXPECT().RenderSelectionForm(mock.Anything).Return(&form, nil)

	out, err := execute(t, svc, "form")
	if err != nil {
		t.Fatalf("form error = %v", err)
	}

	for _, want := range []string{
		"Please choose Strategy\n",
		"    fast\tFast Shipping\n",
		"  * cheap\tCheapest\n",
		"Operations:\n- id: fast\n",
		"[Select strategy]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output = %q, want it to contain %q", out, want)
		}
	}
}

func TestFormCmd_EmptyAndStale(t *testing.T) {
	t.Parallel()

	form := packaging.BuildSelectionForm(nil, "gone", true)

	svc := mocks.NewMockPackagingDebugService(t)
	svc.EXPECT().RenderSelectionForm(mock.Anything).Return(&form, nil)

	out, err := execute(t, svc, "form")
	if err != nil {
		t.Fatalf("form error = %v", err)
	}
	if !strings.Contains(out, "(no strategies available)") {
		t.Errorf("output = %q, want the empty registry notice", out)
	}
	if !strings.Contains(out, `saved strategy "gone" is no longer registered`) {
		t.Errorf("output = %q, want the stale notice", out)
	}
}

func TestApplyCmd_ValidatesByDefault(t *testing.T) {
	t.Parallel()

	report := &packaging.InvocationReport{
		StrategyID: "cheap",
		AdminLabel: "Cheapest",
		Dump:       packaging.ReportHeader + "\n[]\n",
	}
	svc := mocks.NewMockPackagingDebugService(t)
	svc.EXPECT().
		SubmitSelection(mock.Anything, ports.SelectionInput{StrategyID: "cheap"}).
		Return(report, nil)

	out, err := execute(t, svc, "apply", "cheap")
	if err != nil {
		t.Fatalf("apply error = %v", err)
	}

	want := "Cheapest (cheap)\nInvoked packageProducts()\n[]\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestApplyCmd_TrimsArgument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "validated", args: []string{"apply", " cheap "}},
		{name: "forced", args: []string{"apply", "--force", "cheap\t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			report := &packaging.InvocationReport{StrategyID: "cheap", AdminLabel: "Cheapest"}
			svc := mocks.NewMockPackagingDebugService(t)
			svc.EXPECT().
				SubmitSelection(mock.Anything, ports.SelectionInput{StrategyID: "cheap"}).
				Return(report, nil).Maybe()
			svc.EXPECT().
				ApplySelection(mock.Anything, "cheap").
				Return(report, nil).Maybe()

			if _, err := execute(t, svc, tt.args...); err != nil {
				t.Fatalf("apply error = %v", err)
			}
		})
	}
}

func TestApplyCmd_ForceSkipsValidation(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockPackagingDebugService(t)
	svc.EXPECT().
		ApplySelection(mock.Anything, "gone").
		Return(nil, &domain.UnknownStrategyError{ID: "gone"})

	_, err := execute(t, svc, "apply", "--force", "gone")

	var unknown *domain.UnknownStrategyError
	if !errors.As(err, &unknown) {
		t.Fatalf("apply --force error = %v, want *UnknownStrategyError", err)
	}
}

func TestApplyCmd_RequiresOneArgument(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockPackagingDebugService(t)

	if _, err := execute(t, svc, "apply"); err == nil {
		t.Fatal("apply without id error = nil, want argument error")
	}
}

func TestRootCmd_OpenErrorIsReturned(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("APP_PROFILE environment variable is required")
	root := newRootCmd(func(*cobra.Command, globalOptions) (ports.PackagingDebugService, func(), error) {
		return nil, nil, wantErr
	})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"strategies"})

	if err := root.ExecuteContext(t.Context()); !errors.Is(err, wantErr) {
		t.Fatalf("Execute() error = %v, want %v", err, wantErr)
	}
}
