package sources

// Source describes one configured feed endpoint.
type Source struct {
	URL     string `yaml:"url"`
	Agency  string `yaml:"agency"`
	Country string `yaml:"country"`
}
