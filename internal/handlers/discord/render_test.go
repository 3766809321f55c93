package discord

import (
	"io"
	"strings"
	"testing"

	"github.com/KirkDiggler/talentprobe/internal/catalog"
	"github.com/KirkDiggler/talentprobe/internal/check"
	"github.com/KirkDiggler/talentprobe/internal/models"
	"github.com/KirkDiggler/talentprobe/internal/services/character"
	"github.com/KirkDiggler/talentprobe/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRerollSkillCustomID_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		skill   string
		useSpec bool
	}{
		{name: "plain", skill: "Klettern", useSpec: false},
		{name: "with specialization", skill: "Klettern", useSpec: true},
		{name: "name with separator", skill: "Sprachen|Alt", useSpec: false},
		{name: "umlauts", skill: "Körperbeherrschung", useSpec: true},
		{name: "longest allowed name", skill: strings.Repeat("Geschichtswissen ", 4)[:catalog.MaxSkillNameLength-1] + "ä", useSpec: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := rerollSkillCustomID(tt.skill, tt.useSpec)
			assert.LessOrEqual(t, len([]rune(id)), maxCustomIDLength)

			skill, useSpec, ok := parseRerollSkillCustomID(id)
			require.True(t, ok)
			assert.Equal(t, tt.skill, skill)
			assert.Equal(t, tt.useSpec, useSpec)
		})
	}
}

func TestParseRerollSkillCustomID_Invalid(t *testing.T) {
	for _, id := range []string{
		"",
		"reroll_skill",
		"reroll_skill|2|Klettern",
		"reroll_skill|1|",
		"reroll_attribute|MU",
		"join_game",
	} {
		_, _, ok := parseRerollSkillCustomID(id)
		assert.False(t, ok, id)
	}
}

func TestRerollAttributeCustomID_RoundTrip(t *testing.T) {
	id := rerollAttributeCustomID(check.AttributeStrength)
	assert.Equal(t, "reroll_attribute|KK", id)

	attribute, ok := parseRerollAttributeCustomID(id)
	require.True(t, ok)
	assert.Equal(t, "KK", attribute)

	_, ok = parseRerollAttributeCustomID("reroll_attribute|")
	assert.False(t, ok)
	_, ok = parseRerollAttributeCustomID("reroll_skill|0|Klettern")
	assert.False(t, ok)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "kurz", truncate("kurz", 10))
	assert.Equal(t, "genau", truncate("genau", 5))
	assert.Equal(t, "Kör…", truncate("Körperkraft", 4))
	assert.Len(t, []rune(truncate(strings.Repeat("ä", 200), 100)), 100)
}

func TestLabelColor(t *testing.T) {
	assert.Equal(t, colorSuccess, labelColor(check.LabelSuccess))
	assert.Equal(t, colorFailure, labelColor(check.LabelFailure))
	assert.Equal(t, colorCritical, labelColor(check.LabelCriticalSuccess))
	assert.Equal(t, colorCritical, labelColor(check.LabelCriticalFailure))
}

func TestRenderSkillRoll(t *testing.T) {
	skill := &models.Skill{
		Name:           "Klettern",
		Category:       "Körpertalente",
		Attributes:     []check.Attribute{check.AttributeCourage, check.AttributeAgility, check.AttributeStrength},
		Value:          4,
		Specialization: "Fassadenklettern",
	}
	output := &character.RollSkillOutput{
		Character: &models.Character{Name: "Alrik"},
		Skill:     skill,
		Outcome: &check.SkillCheckOutcome{
			Rolls:           []int{13, 4, 8},
			RemainingPoints: 5,
			Succeeded:       true,
			QualityLevel:    2,
		},
		Message: &messaging.GetSkillCheckMessageOutput{
			Label:   "Klettern [MU/GE/KK] – Körpertalente",
			Result:  "✅ Erfolg (TaP: 5, QS: 2)",
			Details: []string{"MU: geworfen 13 vs benötigt 12 → ✘", "GE: geworfen 4 vs benötigt 12 → ✔"},
		},
		UsedSpecialization: true,
	}

	data := renderSkillRoll(output)
	require.Len(t, data.Embeds, 1)
	embed := data.Embeds[0]
	assert.Equal(t, "Klettern [MU/GE/KK] – Körpertalente", embed.Title)
	assert.Equal(t, "**✅ Erfolg (TaP: 5, QS: 2)**", embed.Description)
	assert.Equal(t, colorSuccess, embed.Color)
	assert.Equal(t, "Alrik", embed.Footer.Text)
	assert.Zero(t, data.Flags)

	require.Len(t, embed.Fields, 4)
	assert.Equal(t, "🎲 13 · 4 · 8", embed.Fields[0].Value)
	assert.Equal(t, "4", embed.Fields[1].Value)
	assert.Equal(t, "Fassadenklettern (+2)", embed.Fields[2].Value)
	assert.Contains(t, embed.Fields[3].Value, "MU: geworfen 13")

	require.Len(t, data.Components, 1)
	row, ok := data.Components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	button, ok := row.Components[0].(discordgo.Button)
	require.True(t, ok)
	assert.Equal(t, "reroll_skill|1|Klettern", button.CustomID)
}

func TestRenderAttributeRoll(t *testing.T) {
	output := &character.RollAttributeOutput{
		Character: &models.Character{Name: "Alrik"},
		Attribute: check.AttributeCourage,
		Outcome: &check.RollOutcome{
			RolledValue:       20,
			Target:            12,
			IsCriticalFailure: true,
			Margin:            -8,
		},
		Message: &messaging.GetAttributeCheckMessageOutput{
			Label:   "Eigenschaft: MU (≤ 12)",
			Result:  messaging.TextCriticalFailure,
			Details: []string{"geworfen 20 vs benötigt 12 → ✘"},
			Flavor:  "Autsch.",
		},
	}

	data := renderAttributeRoll(output)
	require.Len(t, data.Embeds, 1)
	embed := data.Embeds[0]
	assert.Equal(t, colorCritical, embed.Color)
	assert.Equal(t, "**"+messaging.TextCriticalFailure+"**\n*Autsch.*", embed.Description)
	assert.Equal(t, "🎲 20", embed.Fields[0].Value)

	row := data.Components[0].(discordgo.ActionsRow)
	assert.Equal(t, "reroll_attribute|MU", row.Components[0].(discordgo.Button).CustomID)
}

func TestRenderSheet(t *testing.T) {
	sheet := &messaging.GetCharacterSheetMessageOutput{
		Title:      "Alrik",
		Attributes: "MU 12 · KL 12",
		SkillsByCategory: []*messaging.SkillBlock{
			{Category: "Körpertalente", Lines: []string{"Klettern (MU/GE/KK): 4", "Schwimmen (GE/KO/KK): 0"}},
		},
	}

	data := renderSheet(sheet, "2 Talente")
	embed := data.Embeds[0]
	assert.Equal(t, "Alrik", embed.Title)
	assert.Equal(t, "2 Talente", embed.Description)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "MU 12 · KL 12", embed.Fields[0].Value)
	assert.Equal(t, "Körpertalente", embed.Fields[1].Name)
	assert.Equal(t, "Klettern (MU/GE/KK): 4\nSchwimmen (GE/KO/KK): 0", embed.Fields[1].Value)
}

func TestRenderSheet_CapsFields(t *testing.T) {
	sheet := &messaging.GetCharacterSheetMessageOutput{Title: "Alrik"}
	for i := 0; i < 40; i++ {
		sheet.SkillsByCategory = append(sheet.SkillsByCategory, &messaging.SkillBlock{Category: "K", Lines: []string{"x"}})
	}

	data := renderSheet(sheet, "")
	assert.Len(t, data.Embeds[0].Fields, maxEmbedFields)
}

func TestRenderCharacterList(t *testing.T) {
	data := renderCharacterList(&character.ListCharactersOutput{
		Characters: []*models.Character{
			{Name: "Alrik"},
			{Name: "Gerion"},
		},
		ActiveCharacterName: "Gerion",
	})

	assert.Equal(t, discordgo.MessageFlagsEphemeral, data.Flags)
	assert.Equal(t, "• Alrik\n⭐ **Gerion** (aktiv)", data.Embeds[0].Description)

	empty := renderCharacterList(&character.ListCharactersOutput{})
	assert.Contains(t, empty.Embeds[0].Description, "/dsa character new")
}

func TestRenderExport(t *testing.T) {
	data := renderExport(&character.ExportCharactersOutput{
		FileName: character.ExportFileName,
		Data:     []byte(`{"Alrik":{}}`),
	})

	require.Len(t, data.Files, 1)
	file := data.Files[0]
	assert.Equal(t, "dsa_characters.json", file.Name)
	assert.Equal(t, "application/json", file.ContentType)

	body, err := io.ReadAll(file.Reader)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Alrik":{}}`, string(body))
}

func TestRenderError(t *testing.T) {
	data := renderError("Talent „Fliegen“ nicht gefunden.")
	assert.Equal(t, discordgo.MessageFlagsEphemeral, data.Flags)
	assert.Equal(t, "Fehler", data.Embeds[0].Title)
	assert.Equal(t, colorFailure, data.Embeds[0].Color)
}
