package core

const (
	DefaultExportFileName = "metadata.json"

	// Types accepted on the command line for modify.
	TypeString = "string"
	TypeInt    = "int"
	TypeFloat  = "float"
	TypeBool   = "bool"
)
