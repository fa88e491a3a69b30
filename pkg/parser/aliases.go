package parser

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Canonical record fields a column can map to.
const (
	fieldDate        = "date"
	fieldAmount      = "amount"
	fieldCard        = "card"
	fieldCategory    = "category"
	fieldStatus      = "status"
	fieldDescription = "description"
)

var canonicalFields = map[string]struct{}{
	fieldDate:        {},
	fieldAmount:      {},
	fieldCard:        {},
	fieldCategory:    {},
	fieldStatus:      {},
	fieldDescription: {},
}

// defaultAliases maps normalized header text to canonical fields. The
// Russian names are the headers of the bank's own operation exports.
func defaultAliases() map[string]string {
	return map[string]string{
		"date":           fieldDate,
		"дата операции":  fieldDate,
		"amount":         fieldAmount,
		"сумма операции": fieldAmount,
		"card":           fieldCard,
		"номер карты":    fieldCard,
		"category":       fieldCategory,
		"категория":      fieldCategory,
		"status":         fieldStatus,
		"статус":         fieldStatus,
		"description":    fieldDescription,
		"описание":       fieldDescription,
	}
}

type aliasFile struct {
	Columns map[string]string `yaml:"columns"`
}

// LoadAliases merges header aliases from a YAML file into the parser's
// defaults, so exports from other banks can be ingested without code
// changes. Keys are header names, values are canonical field names.
func (p *Parser) LoadAliases(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading column aliases: %w", err)
	}

	var f aliasFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("error parsing column aliases: %w", err)
	}

	for header, field := range f.Columns {
		if _, ok := canonicalFields[field]; !ok {
			return fmt.Errorf("unknown canonical field %q for header %q", field, header)
		}
		p.aliases[normalizeHeader(header)] = field
	}

	p.logger.Debug("column aliases loaded", "path", path, "count", len(f.Columns))
	return nil
}
