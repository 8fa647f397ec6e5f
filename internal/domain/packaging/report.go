package packaging

import "time"

// ReportHeader prefixes every invocation dump.
const ReportHeader = "Invoked packageProducts()"

// InvocationReport captures one debug run of a strategy.
type InvocationReport struct {
	StrategyID string
	AdminLabel string
	Products   []Product
	Packages   []Package
	Dump       string
	InvokedAt  time.Time
}
