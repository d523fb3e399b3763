// Package message localizes failure reasons.
//
// Reasons produced by the constraint and coercion packages carry a
// translation key and parameters next to their English message. A Catalog
// maps those keys to templates per language and substitutes %{name}
// placeholders with the reason's parameters:
//
//	catalog, err := message.Default(message.WithDefaultLanguage("en"))
//	if err != nil {
//	    return err
//	}
//	for _, r := range reasons {
//	    fmt.Println(r.Path(), catalog.Translate("es-MX,es;q=0.9", r))
//	}
//
// Language selection uses golang.org/x/text/language, so regional variants
// and Accept-Language values resolve to the closest supported language.
// Reasons without a key, and keys missing from the catalog, fall back to
// the reason's own message. Custom catalogs are YAML documents keyed by
// language code and parsed with ParseYAML or LoadFS.
package message
