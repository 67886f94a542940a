package store

import "gopkg.in/yaml.v3"

// YAMLStore is a file-based store using YAML serialization.
type YAMLStore struct {
	*fileStore
}

// NewYAMLStore creates a YAMLStore backed by the file at path, ensuring its
// directory exists. The file itself is created on the first save.
func NewYAMLStore(path string) (*YAMLStore, error) {
	fs, err := newFileStore(path, codec{name: "yaml", marshal: yaml.Marshal, unmarshal: yaml.Unmarshal})
	if err != nil {
		return nil, err
	}
	return &YAMLStore{fs}, nil
}
