package i18n

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"factskill/internal/domain"
	"factskill/internal/ports/output"
)

var _ output.Translator = (*Translator)(nil)

// Translator resolves keys for one locale: the exact bundle first, then the
// base-language bundle.
type Translator struct {
	locale string
	chain  []*localeBundle
	pick   IndexPicker
}

func (t *Translator) Locale() string { return t.locale }

// Resolve returns the value for key. A sequence resolves to one element
// chosen by the catalog's picker.
func (t *Translator) Resolve(key string) (string, error) {
	return t.Localize(key, nil)
}

// Localize renders a scalar message with data. Sequence elements are
// returned verbatim.
func (t *Translator) Localize(key string, data map[string]any) (string, error) {
	for _, b := range t.chain {
		if items, ok := b.lists[key]; ok {
			if len(items) == 0 {
				return "", fmt.Errorf("%w: %s in %s", domain.ErrEmptyTranslationSet, key, b.tag)
			}
			idx := t.pick(len(items))
			if idx < 0 || idx >= len(items) {
				return "", fmt.Errorf("i18n: picker returned %d for %d items", idx, len(items))
			}
			return items[idx], nil
		}
		if _, ok := b.scalars[key]; ok {
			return b.render(key, data)
		}
	}
	return "", fmt.Errorf("%w: %s for locale %q", domain.ErrMissingTranslationKey, key, t.locale)
}

func (b *localeBundle) render(key string, data map[string]any) (string, error) {
	localizer := i18n.NewLocalizer(b.messages, b.tag.String())
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		return "", fmt.Errorf("i18n: localize %s (%s): %w", key, b.tag, err)
	}
	return msg, nil
}

// lookupErr reports why key would not resolve through chain, without
// consuming randomness or rendering templates.
func lookupErr(chain []*localeBundle, locale, key string) error {
	for _, b := range chain {
		if items, ok := b.lists[key]; ok {
			if len(items) == 0 {
				return fmt.Errorf("%w: %s in %s", domain.ErrEmptyTranslationSet, key, b.tag)
			}
			return nil
		}
		if _, ok := b.scalars[key]; ok {
			return nil
		}
	}
	return fmt.Errorf("%w: %s for locale %q", domain.ErrMissingTranslationKey, key, locale)
}
