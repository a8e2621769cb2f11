package utils

import (
	"os"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var messageFiles = []string{"en.yaml", "zh_tw.yaml"}

// NewI18NBundle creates an english based bundle holding the given default
// messages. Translations found in `dir` override or extend them.
func NewI18NBundle(dir string, defaults ...*i18n.Message) (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	if err := bundle.AddMessages(language.English, defaults...); err != nil {
		return nil, err
	}

	if dir == "" {
		return bundle, nil
	}

	for _, name := range messageFiles {
		file := path.Join(dir, name)
		if _, err := os.Stat(file); os.IsNotExist(err) {
			continue
		}
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, err
		}
	}

	return bundle, nil
}

func NewLocalizer(bundle *i18n.Bundle, lang string) *i18n.Localizer {
	return i18n.NewLocalizer(bundle, lang)
}
