package excel

// Config holds export settings.
type Config struct {
	// UploadPrefix is prepended to object keys of uploaded exports.
	UploadPrefix string `mapstructure:"upload_prefix" default:"exports/"`
	// MaxColumns bounds the columns a caller may request for one export.
	// Exports of every column are not limited.
	MaxColumns int `mapstructure:"max_columns" default:"200"`
}
