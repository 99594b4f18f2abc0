package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeChannel(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Channel
	}{
		{
			name:     "Canal em minúsculas é mantido",
			raw:      "website",
			expected: ChannelWebsite,
		},
		{
			name:     "Capitalização é normalizada",
			raw:      "Newsletter",
			expected: ChannelNewsletter,
		},
		{
			name:     "Espaços nas bordas são removidos",
			raw:      "  podcast  ",
			expected: ChannelPodcast,
		},
		{
			name:     "Alias social vira social_media",
			raw:      "social",
			expected: ChannelSocialMedia,
		},
		{
			name:     "Canal desconhecido é preservado como veio",
			raw:      "billboard",
			expected: Channel("billboard"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeChannel(tt.raw))
		})
	}
}

func TestChannelProfile(t *testing.T) {
	t.Run("Canais digitais entregam por impressões", func(t *testing.T) {
		for _, ch := range []Channel{ChannelWebsite, ChannelStreaming} {
			profile := ch.Profile()
			assert.Equal(t, DeliveredFromImpressions, profile.DeliveredFrom, string(ch))
			assert.Equal(t, "Impressions", profile.VolumeLabel, string(ch))
			assert.True(t, ch.IsDigital(), string(ch))
		}
	})

	t.Run("Newsletter entrega por disparos detectados", func(t *testing.T) {
		profile := ChannelNewsletter.Profile()
		assert.Equal(t, DeliveredFromSendBursts, profile.DeliveredFrom)
		assert.Equal(t, "Sends", profile.VolumeLabel)
	})

	t.Run("Canais tradicionais entregam por contagem de entradas", func(t *testing.T) {
		tests := map[Channel]string{
			ChannelPodcast:     "Episodes",
			ChannelRadio:       "Spots",
			ChannelPrint:       "Insertions",
			ChannelSocialMedia: "Posts",
		}

		for ch, label := range tests {
			profile := ch.Profile()
			assert.Equal(t, label, profile.VolumeLabel, string(ch))
			assert.False(t, ch.IsDigital(), string(ch))
		}
	})

	t.Run("Canal desconhecido recebe o perfil padrão", func(t *testing.T) {
		profile := Channel("billboard").Profile()
		assert.Equal(t, "Units", profile.VolumeLabel)
		assert.False(t, Channel("billboard").UsesTrackingPixel())
	})

	t.Run("Pixel de tracking cobre digitais e newsletter", func(t *testing.T) {
		assert.True(t, ChannelWebsite.UsesTrackingPixel())
		assert.True(t, ChannelNewsletter.UsesTrackingPixel())
		assert.False(t, ChannelPrint.UsesTrackingPixel())
	})
}
