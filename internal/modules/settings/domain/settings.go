package domain

// Settings is what the config file holds: at most an override of the store path.
type Settings struct {
	Database Database `yaml:"database"`
}

type Database struct {
	FilePath string `yaml:"file_path,omitempty"`
}

func (s Settings) Override() (string, bool) {
	if s.Database.FilePath == "" {
		return "", false
	}
	return s.Database.FilePath, true
}
