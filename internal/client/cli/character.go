package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/dmitrijs2005/tablekeeper/internal/client/forms"
	"github.com/dmitrijs2005/tablekeeper/internal/client/models"
)

// promptCharacter walks the user through the character sheet fields, using
// the provided card as defaults (an empty line keeps the current value).
// Numeric fields are clamped into their game ranges at input time.
func promptCharacter(reader *bufio.Reader, def models.CharacterCard) (models.CharacterCard, error) {
	card := def

	name, err := getSimpleText(reader, textPrompt("Name", def.Name), os.Stdout)
	if err != nil {
		return card, err
	}
	if name != "" {
		card.Name = name
	}

	textFields := []struct {
		prompt string
		dst    *string
	}{
		{"Race", &card.Race},
		{"Class", &card.Class},
		{"Background", &card.Background},
		{"Alignment", &card.Alignment},
	}
	for _, f := range textFields {
		v, err := getSimpleText(reader, textPrompt(f.prompt, *f.dst), os.Stdout)
		if err != nil {
			return card, err
		}
		if v != "" {
			*f.dst = v
		}
	}

	intFields := []struct {
		prompt string
		dst    *int
		bounds [2]int
	}{
		{"Level", &card.Level, forms.LevelRange},
		{"Strength", &card.Strength, forms.AbilityRange},
		{"Dexterity", &card.Dexterity, forms.AbilityRange},
		{"Constitution", &card.Constitution, forms.AbilityRange},
		{"Intelligence", &card.Intelligence, forms.AbilityRange},
		{"Wisdom", &card.Wisdom, forms.AbilityRange},
		{"Charisma", &card.Charisma, forms.AbilityRange},
		{"Armor class", &card.AC, forms.ACRange},
		{"Hit points", &card.HP, forms.HPRange},
		{"Max hit points", &card.MaxHP, forms.HPRange},
		{"Speed", &card.Speed, forms.SpeedRange},
		{"Proficiency bonus", &card.Proficiency, forms.ProficiencyRange},
	}
	for _, f := range intFields {
		v, err := GetInt(reader, f.prompt, *f.dst, f.bounds, os.Stdout)
		if err != nil {
			return card, err
		}
		*f.dst = v
	}

	multiFields := []struct {
		prompt string
		dst    *string
	}{
		{"Skills", &card.Skills},
		{"Saving throws", &card.Saves},
		{"Equipment", &card.Equipment},
		{"Spells", &card.Spells},
	}
	for _, f := range multiFields {
		v, err := GetMultiline(reader, f.prompt, os.Stdout)
		if err != nil {
			return card, err
		}
		if v != "" {
			*f.dst = v
		}
	}

	return card, nil
}

func textPrompt(label, def string) string {
	if def == "" {
		return "Enter " + label
	}
	return fmt.Sprintf("Enter %s [%s]", label, def)
}

func renderCharacterSheet(c *models.CharacterCard) {
	fmt.Printf("%s\n", c.Name)
	fmt.Printf("Level %d %s %s\n", c.Level, c.Race, c.Class)
	if c.Background != "" {
		fmt.Printf("Background: %s\n", c.Background)
	}
	if c.Alignment != "" {
		fmt.Printf("Alignment: %s\n", c.Alignment)
	}
	fmt.Printf("STR %d  DEX %d  CON %d  INT %d  WIS %d  CHA %d\n",
		c.Strength, c.Dexterity, c.Constitution, c.Intelligence, c.Wisdom, c.Charisma)
	fmt.Printf("AC %d  HP %d/%d  Speed %d  Proficiency +%d\n",
		c.AC, c.HP, c.MaxHP, c.Speed, c.Proficiency)
	if c.Skills != "" {
		fmt.Printf("Skills: %s\n", c.Skills)
	}
	if c.Saves != "" {
		fmt.Printf("Saves: %s\n", c.Saves)
	}
	if c.Equipment != "" {
		fmt.Printf("Equipment: %s\n", c.Equipment)
	}
	if c.Spells != "" {
		fmt.Printf("Spells: %s\n", c.Spells)
	}
}
