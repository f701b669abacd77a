package logging

// Structured field keys shared across packages.
const (
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	FieldFormat = "format"
	FieldJobs   = "jobs"
	FieldStrict = "strict"

	FieldFilesDiscovered = "files_discovered"
	FieldFilesAnalyzed   = "files_analyzed"
	FieldFindingsTotal   = "findings_total"
	FieldErrors          = "errors"
	FieldWarnings        = "warnings"
	FieldInfo            = "info"

	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	FieldRule        = "rule"
	FieldName        = "name"
	FieldSeverity    = "severity"
	FieldDescription = "description"
)
