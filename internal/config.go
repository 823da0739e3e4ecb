package internal

import (
	"file-restorer/domain/suffix"
	"strings"
)

type Config struct {
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	TargetDir      string `env:"TARGET_DIR,default=."`
	FileTypes      string `env:"FILE_TYPES"`
	MaxFileSize    int64  `env:"MAX_FILE_SIZE,default=100000000"`
	MinFreeBytes   int64  `env:"MIN_FREE_BYTES,default=0"`
	SuffixPattern  string `env:"SUFFIX_PATTERN"`
	SignaturesFile string `env:"SIGNATURES_FILE"`
	JournalPath    string `env:"JOURNAL_PATH"`
	LogFile        string `env:"LOG_FILE,default=FileRestorer.log"`
	Colours        bool   `env:"COLOURS,default=true"`
}

// Pattern falls back to the built-in BandarChor pattern.
func (c Config) Pattern() string {
	if strings.TrimSpace(c.SuffixPattern) == "" {
		return suffix.DefaultPattern
	}
	return c.SuffixPattern
}

// Types splits FILE_TYPES on commas and blanks.
func (c Config) Types() []string {
	return SplitList(c.FileTypes)
}

func SplitList(list string) []string {
	return strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == ';'
	})
}
