package logstore

// Config holds configuration for the log store.
type Config struct {
	// MaxLength caps the total retained log text in bytes.
	MaxLength int `mapstructure:"max_length" default:"2000000"`
	// ExportBytes caps the log text written into an exported snapshot.
	ExportBytes int `mapstructure:"export_bytes" default:"1000000"`
}
