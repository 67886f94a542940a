package store

import "encoding/json"

// JSONStore is a file-based store using JSON serialization.
type JSONStore struct {
	*fileStore
}

// NewJSONStore creates a JSONStore backed by the file at path, ensuring its
// directory exists. The file itself is created on the first save.
func NewJSONStore(path string) (*JSONStore, error) {
	fs, err := newFileStore(path, codec{
		name: "json",
		marshal: func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		},
		unmarshal: json.Unmarshal,
	})
	if err != nil {
		return nil, err
	}
	return &JSONStore{fs}, nil
}
