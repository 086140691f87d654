package triggers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
)

// Perspective selects who a trigger description is written about
type Perspective string

// Perspectives
const (
	PerspectiveSelf   Perspective = "self"
	PerspectiveTarget Perspective = "target"
	PerspectiveAlly   Perspective = "ally"
)

// FallbackPhrase describes triggers the catalog does not know
const FallbackPhrase = "When the trigger condition is met"

var (
	conjugation = regexp.MustCompile(`\{self:([^|}]*)\|([^}]*)\}`)
	placeholder = regexp.MustCompile(`\{([a-z_]+)\}`)
)

type pronouns struct {
	subject    string
	object     string
	possessive string
}

var perspectivePronouns = map[Perspective]pronouns{
	PerspectiveSelf:   {subject: "I", object: "me", possessive: "my"},
	PerspectiveTarget: {subject: "the target", object: "the target", possessive: "the target's"},
	PerspectiveAlly:   {subject: "an ally", object: "an ally", possessive: "an ally's"},
}

// ParsePerspective maps a perspective name, defaulting to self
func ParsePerspective(name string) Perspective {
	p := Perspective(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := perspectivePronouns[p]; ok {
		return p
	}
	return PerspectiveSelf
}

// Describe renders a trigger instance as an English clause, such as
// "When my health falls below 50%".
func (c *Catalog) Describe(instance spell.TriggerInstance, perspective Perspective) string {
	d, ok := c.Get(instance.TriggerID)
	if !ok || d.Phrase == "" {
		return FallbackPhrase
	}

	p, ok := perspectivePronouns[perspective]
	if !ok {
		p = perspectivePronouns[PerspectiveSelf]
	}

	text := conjugation.ReplaceAllStringFunc(d.Phrase, func(m string) string {
		parts := conjugation.FindStringSubmatch(m)
		if perspective == PerspectiveSelf || perspective == "" {
			return parts[1]
		}
		return parts[2]
	})

	text = placeholder.ReplaceAllStringFunc(text, func(m string) string {
		name := m[1 : len(m)-1]
		switch name {
		case "subject":
			return p.subject
		case "object":
			return p.object
		case "possessive":
			return p.possessive
		}
		value, ok := instance.Parameters[name]
		if !ok {
			value = c.DefaultParameterValue(name)
		}
		return c.phraseFor(name, value)
	})

	return capitalize(strings.Join(strings.Fields(text), " "))
}

// DescribeSet renders a compound set as one sentence joined by "and" or "or".
// An empty set describes to the empty string.
func (c *Catalog) DescribeSet(set spell.CompoundTriggerSet, perspective Perspective) string {
	if len(set.Triggers) == 0 {
		return ""
	}

	joiner := " and "
	if set.Logic() == spell.LogicOr {
		joiner = " or "
	}

	clauses := make([]string, len(set.Triggers))
	for i, t := range set.Triggers {
		clause := c.Describe(t, perspective)
		if i > 0 {
			clause = lowerFirst(clause)
		}
		clauses[i] = clause
	}
	return strings.Join(clauses, joiner)
}

func (c *Catalog) phraseFor(name string, value any) string {
	text := formatValue(value)
	if phrases, ok := c.parameterPhrases[name]; ok {
		if phrase, ok := phrases[text]; ok {
			return phrase
		}
	}
	return text
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// lowerFirst lowercases the leading word unless it is the pronoun "I"
func lowerFirst(s string) string {
	if strings.HasPrefix(s, "I ") {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
