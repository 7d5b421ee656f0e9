package overlay

import (
	"os"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// WriteFile writes o to path as compact JSON, creating or truncating the
// file.
func WriteFile(path string, o Overlay) (err error) {
	data, err := json.Marshal(o)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = f.Write(data)
	return err
}

// LogJSON logs o as 2-space indented JSON at info level.
func LogJSON(log logrus.FieldLogger, o Overlay) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	log.Info(string(data))
	return nil
}
