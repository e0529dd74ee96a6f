package docindex

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/corpuslab/vsmsearch/internal/errors"
)

// LoadSynonyms reads an external thesaurus file (term -> list of
// synonym terms) in YAML form. A missing path is not an error: it
// simply yields an empty map, which disables synonym expansion.
func LoadSynonyms(path string) (map[string][]string, error) {
	if path == "" {
		return map[string][]string{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string][]string{}, nil
		}
		return nil, errors.NewCorpusError("LoadSynonyms", path, err)
	}

	synonyms := make(map[string][]string)
	if err := yaml.Unmarshal(data, &synonyms); err != nil {
		return nil, errors.NewCorpusError("LoadSynonyms", path, err)
	}
	return synonyms, nil
}
