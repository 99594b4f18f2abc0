package domain

import "strings"

// Channel identifica o canal de veiculação de um item de inventário.
type Channel string

const (
	ChannelWebsite     Channel = "website"
	ChannelNewsletter  Channel = "newsletter"
	ChannelPodcast     Channel = "podcast"
	ChannelRadio       Channel = "radio"
	ChannelPrint       Channel = "print"
	ChannelSocialMedia Channel = "social_media"
	ChannelStreaming   Channel = "streaming"
	ChannelOther       Channel = "other"
)

// GoalType indica como a meta de entrega de um canal é medida.
type GoalType string

const (
	// GoalTypeImpressions é usado pelos canais digitais, medidos em impressões.
	GoalTypeImpressions GoalType = "impressions"
	// GoalTypeFrequency é usado pelos canais offline, medidos em unidades discretas.
	GoalTypeFrequency GoalType = "frequency"
)

// DeliveredMode define de onde vem o volume entregue de um canal.
type DeliveredMode int

const (
	// DeliveredFromImpressions soma as impressões das entradas válidas.
	DeliveredFromImpressions DeliveredMode = iota
	// DeliveredFromSendBursts usa a detecção de disparos de newsletter.
	DeliveredFromSendBursts
	// DeliveredFromReportCount conta os relatórios válidos submetidos.
	DeliveredFromReportCount
)

// ChannelProfile descreve a semântica de entrega de um canal. Novos canais
// são adicionados por dados nesta tabela, não por fluxo de controle.
type ChannelProfile struct {
	GoalType      GoalType
	VolumeLabel   string
	DeliveredFrom DeliveredMode
}

var channelProfiles = map[Channel]ChannelProfile{
	ChannelWebsite:     {GoalType: GoalTypeImpressions, VolumeLabel: "Impressions", DeliveredFrom: DeliveredFromImpressions},
	ChannelStreaming:   {GoalType: GoalTypeImpressions, VolumeLabel: "Impressions", DeliveredFrom: DeliveredFromImpressions},
	ChannelNewsletter:  {GoalType: GoalTypeFrequency, VolumeLabel: "Sends", DeliveredFrom: DeliveredFromSendBursts},
	ChannelPodcast:     {GoalType: GoalTypeFrequency, VolumeLabel: "Episodes", DeliveredFrom: DeliveredFromReportCount},
	ChannelRadio:       {GoalType: GoalTypeFrequency, VolumeLabel: "Spots", DeliveredFrom: DeliveredFromReportCount},
	ChannelPrint:       {GoalType: GoalTypeFrequency, VolumeLabel: "Insertions", DeliveredFrom: DeliveredFromReportCount},
	ChannelSocialMedia: {GoalType: GoalTypeFrequency, VolumeLabel: "Posts", DeliveredFrom: DeliveredFromReportCount},
}

// defaultProfile cobre canais desconhecidos ou ainda não mapeados.
var defaultProfile = ChannelProfile{
	GoalType:      GoalTypeFrequency,
	VolumeLabel:   "Units",
	DeliveredFrom: DeliveredFromReportCount,
}

// NormalizeChannel converte o nome de canal vindo das entradas (qualquer
// capitalização, incluindo o alias legado "social") para o enum interno.
func NormalizeChannel(raw string) Channel {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "social" {
		return ChannelSocialMedia
	}
	return Channel(name)
}

// Profile retorna a semântica de entrega do canal.
func (c Channel) Profile() ChannelProfile {
	if profile, ok := channelProfiles[c]; ok {
		return profile
	}
	return defaultProfile
}

// IsDigital indica se o canal é medido em impressões.
func (c Channel) IsDigital() bool {
	return c.Profile().GoalType == GoalTypeImpressions
}

// UsesTrackingPixel indica se o canal participa do diagnóstico de pixel.
func (c Channel) UsesTrackingPixel() bool {
	return c.IsDigital() || c == ChannelNewsletter
}
