// Package postcode разбирает британские почтовые индексы на outcode и incode.
package postcode

import (
	"regexp"
	"strings"
)

// Postcode разобранный индекс. Incode пустой, если был передан только outcode
type Postcode struct {
	Outcode string
	Incode  string
}

// IsFull возвращает true, если указаны обе части индекса
func (p Postcode) IsFull() bool {
	return p.Incode != ""
}

// String возвращает индекс в каноническом виде "SW7 3QF"
func (p Postcode) String() string {
	if !p.IsFull() {
		return p.Outcode
	}
	return p.Outcode + " " + p.Incode
}

// Normalized возвращает индекс без пробелов в верхнем регистре
func (p Postcode) Normalized() string {
	return p.Outcode + p.Incode
}

var (
	// A9, A99, AA9, AA99, A9A, AA9A
	outcodeRe = regexp.MustCompile(`^(?:` +
		`[A-PR-UWYZ][0-9][0-9]?` +
		`|[A-PR-UWYZ][A-HK-Y][0-9][0-9]?` +
		`|[A-PR-UWYZ][0-9][A-HJKPSTUW]` +
		`|[A-PR-UWYZ][A-HK-Y][0-9][ABEHMNPRVWXY]` +
		`|GIR)$`)

	incodeRe = regexp.MustCompile(`^[0-9][ABD-HJLNP-UW-Z]{2}$`)
)

const (
	girOutcode = "GIR"
	girIncode  = "0AA"
	incodeLen  = 3
)

// Parser разбирает индекс по грамматике Royal Mail
// Регистр и пробелы не учитываются
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse разбирает полный индекс или только outcode
// Второй результат false, если строка не является индексом
func (p *Parser) Parse(raw string) (Postcode, bool) {
	value := Normalize(raw)
	if value == "" {
		return Postcode{}, false
	}

	if len(value) > incodeLen {
		outcode, incode := value[:len(value)-incodeLen], value[len(value)-incodeLen:]
		if validFull(outcode, incode) {
			return Postcode{Outcode: outcode, Incode: incode}, true
		}
	}

	if outcodeRe.MatchString(value) && value != girOutcode {
		return Postcode{Outcode: value}, true
	}

	return Postcode{}, false
}

// Normalize приводит строку к верхнему регистру и удаляет все пробельные символы
func Normalize(raw string) string {
	return strings.Join(strings.Fields(strings.ToUpper(raw)), "")
}

func validFull(outcode, incode string) bool {
	if outcode == girOutcode {
		return incode == girIncode
	}
	return outcodeRe.MatchString(outcode) && incodeRe.MatchString(incode)
}
