package domain

// StandardsState tracks the standards-database lifecycle for a loaded plan.
type StandardsState string

const (
	// StandardsNone means no plan is loaded, so no standards source applies.
	StandardsNone StandardsState = "none"
	// StandardsPending means a plan is loaded and its subject's standards
	// source has not been applied yet.
	StandardsPending StandardsState = "pending"
	// StandardsReady means a database (possibly empty, after fallback
	// exhaustion) has been applied.
	StandardsReady StandardsState = "ready"
)

// SourceFormat identifies which delimited-text convention a standards
// source file uses.
type SourceFormat string

const (
	FormatCSV SourceFormat = "csv"
	FormatTSV SourceFormat = "tsv"
)
