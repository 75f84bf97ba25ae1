package discord

import "github.com/bwmarrin/discordgo"

const (
	commandSend    = "send"
	commandInspect = "inspect"

	optionUrl     = "url"
	optionContent = "content"
	optionMsgId   = "msg_id"
)

var (
	dmPermission   = false
	inspectDefault = int64(discordgo.PermissionBanMembers)
)

var commands = []*discordgo.ApplicationCommand{
	{
		Name:         commandSend,
		Description:  "Send an invitation link to a room",
		DMPermission: &dmPermission,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionUrl,
				Description: "Room link or code",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionContent,
				Description: "Additional room information. Please don't include the room link here",
			},
		},
	},
	{
		Name:                     commandInspect,
		Description:              "Export the RSVPs of an invitation",
		DMPermission:             &dmPermission,
		DefaultMemberPermissions: &inspectDefault,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optionMsgId,
				Description: "Message ID",
				Required:    true,
			},
		},
	},
}
