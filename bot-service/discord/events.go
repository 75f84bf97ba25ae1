package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/roomcall/roomcall-server/bot-service/controllers"
)

func interactionUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}

	return i.User
}

func interactionOf(i *discordgo.Interaction) controllers.Interaction {
	it := controllers.Interaction{
		Id:        i.ID,
		Token:     i.Token,
		ChannelId: i.ChannelID,
		GuildId:   i.GuildID,
	}

	if user := interactionUser(i); user != nil {
		it.UserId = user.ID
	}

	if i.Message != nil {
		it.MessageId = i.Message.ID
	}

	return it
}

func stringOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, option := range options {
		if option.Name == name && option.Type == discordgo.ApplicationCommandOptionString {
			return option.StringValue()
		}
	}

	return ""
}

func sendCommandOf(i *discordgo.Interaction) controllers.SendCommand {
	options := i.ApplicationCommandData().Options
	cmd := controllers.SendCommand{
		Interaction: interactionOf(i),
		Room:        stringOption(options, optionUrl),
		Content:     stringOption(options, optionContent),
	}

	if user := interactionUser(i); user != nil {
		cmd.AuthorName = user.Username
		cmd.AuthorAvatar = user.AvatarURL("")
	}

	return cmd
}

func inspectCommandOf(i *discordgo.Interaction) controllers.InspectCommand {
	return controllers.InspectCommand{
		Interaction: interactionOf(i),
		MsgId:       stringOption(i.ApplicationCommandData().Options, optionMsgId),
	}
}

func componentClickOf(i *discordgo.Interaction) controllers.ComponentClick {
	return controllers.ComponentClick{
		Interaction: interactionOf(i),
		CustomId:    i.MessageComponentData().CustomID,
	}
}
