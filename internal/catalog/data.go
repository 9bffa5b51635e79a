package catalog

import "newskill/internal/media"

var (
	newsRadio = []media.Type{media.News, media.Radio}
	newsVideo = []media.Type{media.Video, media.TV, media.News}
)

func bucket(sources ...*Source) map[string]*Source {
	m := make(map[string]*Source, len(sources))
	for _, s := range sources {
		m[s.Name] = s
	}
	return m
}

func audio(name string, stream Stream, image string, aliases []string, secondary ...string) *Source {
	return &Source{
		Name:           name,
		Aliases:        aliases,
		Stream:         stream,
		MediaType:      media.News,
		MatchTypes:     newsRadio,
		Playback:       media.Audio,
		SecondaryLangs: secondary,
		Image:          image,
	}
}

func video(name string, stream Stream, image string, aliases []string, secondary ...string) *Source {
	return &Source{
		Name:           name,
		Aliases:        aliases,
		Stream:         stream,
		MediaType:      media.News,
		MatchTypes:     newsVideo,
		Playback:       media.VideoPlayback,
		SecondaryLangs: secondary,
		Image:          image,
	}
}

// LangDefaults is the source played for a bare "play the news" in a given
// language.
func LangDefaults() map[string]string {
	return map[string]string{
		"pt-pt": "TSF",
		"ca":    "CCMA",
		"es":    "RNE",
		"en-gb": "BBC",
		"en-us": "NPR",
		"en-au": "ABC",
		"fr":    "France24",
		"de":    "Deutsche Welle",
	}
}

// Default returns the full source catalog. Sources repeated across language
// buckets (EuroNews, DW, RT, France24 variants) are distinct entries on
// purpose: each bucket is scored independently with its own language bonus.
func Default() Catalog {
	return Catalog{
		"en": bucket(
			video("France24 EN",
				Literal("youtube.channel.live//https://www.youtube.com/channel/UCQfwfsi5VrQ8yKZ-UWmAEFg"),
				"ui/images/FR24_EN.jpg",
				[]string{"france 24"}, "fr"),
			video("Deutsche Welle EN",
				Literal("youtube.channel.live//https://www.youtube.com/channel/UCknLrEdhRCp1aegoMqRaCZg"),
				"ui/images/DW.jpg",
				[]string{"DW", "Deutsche Welle"}),
			video("Russia Today",
				Literal("youtube.channel.live//https://www.youtube.com/user/RussiaToday"),
				"ui/images/RT.jpg",
				[]string{"RT", "Russia Today"}, "ru"),
		),
		"en-us": bucket(
			video("SkyStream",
				Literal("https://skynews2-plutolive-vo.akamaized.net/cdhlsskynewsamericas/1013/latest.m3u8?serverSideAds=true"),
				"ui/images/skystream.png",
				[]string{"skyuri", "sky uri", "sky news", "skynews"}, "en"),
			audio("GPB",
				Lazy("gpb"),
				"ui/images/gpb.png",
				[]string{"Georgia Public Broadcasting", "GPB", "Georgia Public Radio"}, "en"),
			audio("AP",
				Literal("rss//https://www.spreaker.com/show/1401466/episodes/feed"),
				"ui/images/AP.png",
				[]string{"AP Hourly Radio News", "Associated Press", "Associated Press News",
					"Associated Press Radio News", "Associated Press Hourly Radio News"}, "en"),
			audio("FOX",
				Literal("rss//http://feeds.foxnewsradio.com/FoxNewsRadio"),
				"ui/images/FOX.png",
				[]string{"FOX News", "FOX", "Fox News Channel"}, "en"),
			audio("NPR",
				Lazy("npr"),
				"ui/images/NPR.png",
				[]string{"NPR News", "NPR", "National Public Radio",
					"National Public Radio News", "NPR News Now"}, "en"),
			audio("PBS",
				Literal("rss//https://www.pbs.org/newshour/feeds/rss/podcasts/show"),
				"ui/images/PBS.png",
				[]string{"PBS News", "PBS", "PBS NewsHour", "PBS News Hour",
					"National Public Broadcasting Service", "Public Broadcasting Service News"}, "en"),
			video("Russia Today America",
				Literal("youtube.channel.live//https://www.youtube.com/channel/UCczrL-2b-gYK3l4yDld4XlQ"),
				"ui/images/RT_US.jpg",
				[]string{"RT", "Russia Today", "RT America", "Russia Today America"}, "en", "ru"),
		),
		"en-gb": bucket(
			audio("BBC",
				Literal("rss//https://podcasts.files.bbci.co.uk/p02nq0gn.rss"),
				"ui/images/BBC.png",
				[]string{"British Broadcasting Corporation", "BBC", "BBC News"}, "en"),
			video("EuroNews",
				Literal("youtube.channel.live//https://www.youtube.com/user/Euronews"),
				"ui/images/euronews.png",
				[]string{"euro", "euronews", "Euro News", "european", "european news"}, "en"),
			video("Russia Today UK",
				Literal("youtube.channel.live//https://www.youtube.com/channel/UC_ab7FFA2ACk2yTHgNan8lQ"),
				"ui/images/RT_UK.jpg",
				[]string{"RT", "Russia Today", "RT UK", "Russia Today UK"}, "en", "ru"),
		),
		"en-au": bucket(
			audio("ABC",
				Lazy("abc"),
				"ui/images/ABC.png",
				[]string{"ABC News Australia", "ABC News", "ABC"}, "en"),
		),
		"en-ca": bucket(
			audio("CBC",
				Literal("rss//https://www.cbc.ca/podcasting/includes/hourlynews.xml"),
				"ui/images/CBC.png",
				[]string{"Canadian Broadcasting Corporation", "CBC", "CBC News"}, "en"),
		),
		"pt-pt": bucket(
			audio("TSF",
				Lazy("tsf"),
				"ui/images/tsf.png",
				[]string{"TSF", "TSF Rádio Notícias", "TSF Notícias"}, "pt"),
			audio("RDP-AFRICA",
				Literal("http://www.rtp.pt//play/itunes/5442"),
				"ui/images/rdp_africa.png",
				[]string{"RDP", "RDP Africa", "Noticiários RDP África"}, "pt"),
			video("EuroNews PT",
				Literal("youtube.channel.live//https://www.youtube.com/user/euronewspt"),
				"ui/images/euronews.png",
				[]string{"euro", "euronews", "Euro News", "european", "european news"}, "pt"),
		),
		"de": bucket(
			video("Deutsche Welle",
				Literal("youtube.channel.live//https://www.youtube.com/c/dwdeutsch"),
				"ui/images/DW.jpg",
				[]string{"DW", "Deutsche Welle"}),
			audio("OE3",
				Literal("https://oe3meta.orf.at/oe3mdata/StaticAudio/Nachrichten.mp3"),
				"ui/images/oe3.jpeg",
				[]string{"OE3", "Ö3 Nachrichten"}),
			audio("DLF",
				Literal("rss//https://www.deutschlandfunk.de/podcast-nachrichten.1257.de.podcast.xml"),
				"ui/images/DLF.png",
				[]string{"DLF", "deutschlandfunk"}),
			audio("WDR",
				Literal("https://www1.wdr.de/mediathek/audio/wdr-aktuell-news/wdr-aktuell-152.podcast"),
				"ui/images/WDR.png",
				[]string{"WDR"}),
			video("EuroNews DE",
				Literal("youtube.channel.live//https://www.youtube.com/user/euronewsde"),
				"ui/images/euronews.png",
				[]string{"euro", "euronews", "Euro News", "european", "european news"}),
		),
		"nl": bucket(
			audio("VRT",
				Literal("https://progressive-audio.lwc.vrtcdn.be/content/fixed/11_11niws-snip_hi.mp3"),
				"ui/images/vrt.png",
				[]string{"VRT Nieuws", "VRT"}),
		),
		"sv": bucket(
			audio("Ekot",
				Literal("rss//https://api.sr.se/api/rss/pod/3795"),
				"ui/images/Ekot.png",
				[]string{"Ekot"}),
		),
		"es": bucket(
			audio("RNE",
				Literal("rss//http://api.rtve.es/api/programas/36019/audios.rs"),
				"ui/images/rne.png",
				[]string{"RNE", "National Spanish Radio", "Radio Nacional de España"}),
			video("France24 ES",
				Literal("youtube.channel.live//https://www.youtube.com/channel/UCUdOoVWuWmgo1wByzcsyKDQ"),
				"ui/images/FR24_ES.jpg",
				[]string{"france 24"}, "fr"),
			video("EuroNews ES",
				Literal("youtube.channel.live//https://www.youtube.com/user/euronewses"),
				"ui/images/euronews.png",
				[]string{"euro", "euronews", "Euro News", "european", "european news"}),
			video("Deutsche Welle ES",
				Literal("youtube.channel.live//https://www.youtube.com/channel/UCT4Jg8h03dD0iN3Pb5L0PMA"),
				"ui/images/DW.jpg",
				[]string{"DW", "Deutsche Welle"}),
		),
		"ca": bucket(
			audio("CCMA",
				Literal("https://de1.api.radio-browser.info/pls/url/69bc7084-523c-11ea-be63-52543be04c81"),
				"ui/images/CCMA.png",
				[]string{"CCMA", "Catalunya Informació"}, "es"),
		),
		"fi": bucket(
			audio("YLE",
				Literal("rss//https://feeds.yle.fi/areena/v1/series/1-1440981.rss"),
				"ui/images/Yle.png",
				[]string{"YLE", "YLE News Radio"}),
		),
		"ru": bucket(
			video("EuroNews RU",
				Literal("youtube.channel.live//https://www.youtube.com/user/euronewsru"),
				"ui/images/euronews.png",
				[]string{"euro", "euronews", "Euro News", "european", "european news"}),
		),
		"it": bucket(
			video("EuroNews IT",
				Literal("youtube.channel.live//https://www.youtube.com/user/euronewsit"),
				"ui/images/euronews.png",
				[]string{"euro", "euronews", "Euro News", "european", "european news"}),
		),
		"fr": bucket(
			video("France24",
				Literal("youtube.channel.live//https://www.youtube.com/channel/UCCCPCZNChQdGa9EkATeye4g"),
				"ui/images/FR24.jpg",
				[]string{"france 24"}),
			video("EuroNews FR",
				Literal("youtube.channel.live//https://www.youtube.com/user/euronewsfr"),
				"ui/images/euronews.png",
				[]string{"euro", "euronews", "Euro News", "european", "european news"}),
			video("Russia Today France",
				Literal("youtube.channel.live//https://www.youtube.com/channel/UCqEVwTnDzlzKOGYNFemqnYA"),
				"ui/images/RT_FR.jpg",
				[]string{"RT", "Russia Today"}, "ru"),
		),
	}
}
