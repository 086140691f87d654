// Package dice previews the dice portion of effect formulas with rpg-toolkit
package dice

import (
	"regexp"
	"strconv"
	"strings"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
)

const (
	// MaxDiceCount bounds the number of dice a preview will roll
	MaxDiceCount = 100
	// MaxDieSize bounds the faces of a previewed die
	MaxDieSize = 1000
)

// diceTermRegex finds the first dice term in a formula like "2d6 + INT"
var diceTermRegex = regexp.MustCompile(`(?i)(\d+)\s*d\s*(\d+)`)

// Preview is one roll of a formula's leading dice term
type Preview struct {
	// Notation is the normalized dice term, e.g. "2d6"
	Notation string
	Count    int
	Size     int

	Total int
	Dice  []int
	// Description is the rpg-toolkit roll description, e.g. "+2d6[3,4]=7"
	Description string

	// Remainder is the rest of the formula, e.g. "+ INT"
	Remainder string

	Min int
	Max int
}

// PreviewFormula rolls the leading dice term of formula
func PreviewFormula(formula string) (*Preview, error) {
	loc := diceTermRegex.FindStringSubmatchIndex(formula)
	if loc == nil {
		return nil, errors.InvalidArgumentf("formula %q has no dice term (expected XdY)", formula)
	}

	count, err := strconv.Atoi(formula[loc[2]:loc[3]])
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid dice count in formula: %s", formula)
	}
	size, err := strconv.Atoi(formula[loc[4]:loc[5]])
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid die size in formula: %s", formula)
	}
	if count <= 0 || size <= 0 {
		return nil, errors.InvalidArgumentf("dice count and size must be positive: %s", formula)
	}
	if count > MaxDiceCount || size > MaxDieSize {
		return nil, errors.InvalidArgumentf("dice term too large: %dd%d", count, size)
	}

	roll, err := toolkitdice.NewRoll(count, size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create dice roll")
	}
	description := roll.GetDescription()

	remainder := strings.TrimSpace(formula[:loc[0]] + formula[loc[1]:])

	return &Preview{
		Notation:    strconv.Itoa(count) + "d" + strconv.Itoa(size),
		Count:       count,
		Size:        size,
		Total:       roll.GetValue(),
		Dice:        parseRolledDice(description),
		Description: description,
		Remainder:   strings.Join(strings.Fields(remainder), " "),
		Min:         count,
		Max:         count * size,
	}, nil
}

// parseRolledDice pulls individual results out of a description like "+2d6[3,4]=7"
func parseRolledDice(description string) []int {
	start := strings.Index(description, "[")
	end := strings.Index(description, "]")
	if start < 0 || end <= start {
		return nil
	}

	var out []int
	for _, part := range strings.Split(description[start+1:end], ",") {
		if d, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			out = append(out, d)
		}
	}
	return out
}
