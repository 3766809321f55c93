package discord

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/KirkDiggler/talentprobe/internal/check"
	"github.com/KirkDiggler/talentprobe/internal/services/character"
	"github.com/KirkDiggler/talentprobe/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// Button IDs
const (
	ButtonRerollSkill     = "reroll_skill"
	ButtonRerollAttribute = "reroll_attribute"

	customIDSeparator = "|"
)

// Discord message limits
const (
	maxCustomIDLength    = 100
	maxDescriptionLength = 4096
	maxFieldValueLength  = 1024
	maxEmbedFields       = 25
)

// rerollSkillCustomID encodes a talent re-roll as "reroll_skill|<0|1>|<name>".
// Talent names are capped at catalog.MaxSkillNameLength, which keeps the ID under maxCustomIDLength.
func rerollSkillCustomID(skillName string, useSpecialization bool) string {
	flag := "0"
	if useSpecialization {
		flag = "1"
	}
	return strings.Join([]string{ButtonRerollSkill, flag, skillName}, customIDSeparator)
}

// rerollAttributeCustomID encodes an attribute re-roll as "reroll_attribute|<MU>"
func rerollAttributeCustomID(attribute check.Attribute) string {
	return ButtonRerollAttribute + customIDSeparator + string(attribute)
}

// parseRerollSkillCustomID is the inverse of rerollSkillCustomID
func parseRerollSkillCustomID(customID string) (skillName string, useSpecialization bool, ok bool) {
	rest, found := strings.CutPrefix(customID, ButtonRerollSkill+customIDSeparator)
	if !found {
		return "", false, false
	}
	flag, name, found := strings.Cut(rest, customIDSeparator)
	if !found || name == "" || (flag != "0" && flag != "1") {
		return "", false, false
	}
	return name, flag == "1", true
}

// parseRerollAttributeCustomID is the inverse of rerollAttributeCustomID
func parseRerollAttributeCustomID(customID string) (string, bool) {
	attribute, found := strings.CutPrefix(customID, ButtonRerollAttribute+customIDSeparator)
	if !found || attribute == "" {
		return "", false
	}
	return attribute, true
}

func labelColor(label check.Label) int {
	switch {
	case label.IsCritical():
		return colorCritical
	case label == check.LabelSuccess:
		return colorSuccess
	default:
		return colorFailure
	}
}

func rerollRow(customID string) discordgo.ActionsRow {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Nochmal würfeln",
				Style:    discordgo.PrimaryButton,
				CustomID: customID,
				Emoji: &discordgo.ComponentEmoji{
					Name: "🎲",
				},
			},
		},
	}
}

func formatRolls(rolls []int) string {
	parts := make([]string, 0, len(rolls))
	for _, roll := range rolls {
		parts = append(parts, fmt.Sprintf("%d", roll))
	}
	return "🎲 " + strings.Join(parts, " · ")
}

func resultDescription(result, flavor string) string {
	if flavor == "" {
		return "**" + result + "**"
	}
	return "**" + result + "**\n*" + flavor + "*"
}

// renderSkillRoll renders a talent check with a re-roll button
func renderSkillRoll(output *character.RollSkillOutput) *discordgo.InteractionResponseData {
	message := output.Message

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Würfel",
			Value:  formatRolls(output.Outcome.Rolls),
			Inline: true,
		},
		{
			Name:   "TaW",
			Value:  fmt.Sprintf("%d", output.Skill.Value),
			Inline: true,
		},
	}
	if output.UsedSpecialization {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Spezialisierung",
			Value:  fmt.Sprintf("%s (+%d)", output.Skill.Specialization, check.SpecializationBonus),
			Inline: true,
		})
	}
	fields = append(fields, &discordgo.MessageEmbedField{
		Name:  "Details",
		Value: truncate(strings.Join(message.Details, "\n"), maxFieldValueLength),
	})

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       message.Label,
				Description: resultDescription(message.Result, message.Flavor),
				Color:       labelColor(output.Outcome.Label()),
				Fields:      fields,
				Footer: &discordgo.MessageEmbedFooter{
					Text: output.Character.Name,
				},
			},
		},
		Components: []discordgo.MessageComponent{
			rerollRow(rerollSkillCustomID(output.Skill.Name, output.UsedSpecialization)),
		},
	}
}

// renderAttributeRoll renders an attribute check with a re-roll button
func renderAttributeRoll(output *character.RollAttributeOutput) *discordgo.InteractionResponseData {
	message := output.Message

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       message.Label,
				Description: resultDescription(message.Result, message.Flavor),
				Color:       labelColor(output.Outcome.Label()),
				Fields: []*discordgo.MessageEmbedField{
					{
						Name:   "Würfel",
						Value:  formatRolls([]int{output.Outcome.RolledValue}),
						Inline: true,
					},
					{
						Name:  "Details",
						Value: strings.Join(message.Details, "\n"),
					},
				},
				Footer: &discordgo.MessageEmbedFooter{
					Text: output.Character.Name,
				},
			},
		},
		Components: []discordgo.MessageComponent{
			rerollRow(rerollAttributeCustomID(output.Attribute)),
		},
	}
}

// renderSheet renders a character sheet as one embed
func renderSheet(sheet *messaging.GetCharacterSheetMessageOutput, description string) *discordgo.InteractionResponseData {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:  "Eigenschaften",
			Value: sheet.Attributes,
		},
	}

	for _, block := range sheet.SkillsByCategory {
		if len(fields) == maxEmbedFields {
			break
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  block.Category,
			Value: truncate(strings.Join(block.Lines, "\n"), maxFieldValueLength),
		})
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       sheet.Title,
				Description: description,
				Color:       colorInfo,
				Fields:      fields,
			},
		},
	}
}

// renderCharacterList renders an owner's roster with the selected character marked
func renderCharacterList(output *character.ListCharactersOutput) *discordgo.InteractionResponseData {
	if len(output.Characters) == 0 {
		return renderInfo("Deine Helden", "Noch keine Helden. Lege mit `/dsa character new` einen an.", true)
	}

	var sb strings.Builder
	for _, c := range output.Characters {
		if c.Name == output.ActiveCharacterName {
			sb.WriteString(fmt.Sprintf("⭐ **%s** (aktiv)\n", c.Name))
			continue
		}
		sb.WriteString(fmt.Sprintf("• %s\n", c.Name))
	}

	return renderInfo("Deine Helden", strings.TrimRight(sb.String(), "\n"), true)
}

// renderExport attaches the exported roster as a file
func renderExport(output *character.ExportCharactersOutput) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Content: "Hier ist der Export deiner Helden.",
		Flags:   discordgo.MessageFlagsEphemeral,
		Files: []*discordgo.File{
			{
				Name:        output.FileName,
				ContentType: "application/json",
				Reader:      bytes.NewReader(output.Data),
			},
		},
	}
}

// renderInfo renders a plain informational embed
func renderInfo(title, description string, ephemeral bool) *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       title,
				Description: truncate(description, maxDescriptionLength),
				Color:       colorInfo,
			},
		},
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return data
}

// renderError renders an ephemeral error embed
func renderError(message string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "Fehler",
				Description: message,
				Color:       colorFailure,
			},
		},
		Flags: discordgo.MessageFlagsEphemeral,
	}
}

// truncate shortens s to at most limit runes, marking the cut with an ellipsis
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
