package utils

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
)

var testDefaults = []*i18n.Message{
	{ID: "advice.fallback", Other: "default fallback"},
	{ID: "only.default", Other: "hello {{.Name}}"},
}

func TestNewI18NBundleWithoutDirectory(t *testing.T) {
	bundle, err := NewI18NBundle("", testDefaults...)
	assert.NoError(t, err)

	message, err := NewLocalizer(bundle, "en").Localize(&i18n.LocalizeConfig{
		MessageID:    "only.default",
		TemplateData: map[string]interface{}{"Name": "vitals"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "hello vitals", message)
}

func TestNewI18NBundleLoadsTranslations(t *testing.T) {
	bundle, err := NewI18NBundle("../i18n", testDefaults...)
	assert.NoError(t, err)

	en, err := NewLocalizer(bundle, "en").Localize(&i18n.LocalizeConfig{MessageID: "advice.fallback"})
	assert.NoError(t, err)
	assert.Contains(t, en, "Keep tracking your lab results")

	zh, err := NewLocalizer(bundle, "zh-TW").Localize(&i18n.LocalizeConfig{MessageID: "advice.fallback"})
	assert.NoError(t, err)
	assert.Contains(t, zh, "檢驗結果")
}

func TestNewI18NBundleMissingDirectory(t *testing.T) {
	_, err := NewI18NBundle("/nonexistent", testDefaults...)
	assert.NoError(t, err)
}
