package components

// Asset paths, relative to the site root. Every file lives under /assets/ so the
// server and the static export share one layout.
const (
	FaviconICO       = "/assets/favicon.ico"
	AppleTouchIcon   = "/assets/apple-touch-icon.png"
	Favicon32        = "/assets/favicon-32x32.png"
	Favicon16        = "/assets/favicon-16x16.png"
	WebManifest      = "/assets/site.webmanifest"
	MainCSS          = "/assets/main.css"
	TailwindCSS      = "/assets/tailwind.css"
	IconFontCSS      = "https://cdnjs.cloudflare.com/ajax/libs/fork-awesome/1.2.0/css/fork-awesome.min.css"
	HeroPoster       = "/assets/tds_promo_screen.png"
	HeroVideoAV1     = "/assets/tds_promo.webm"
	HeroVideoVP9     = "/assets/tds_promo_vp9.webm"
	HeroVideoH265    = "/assets/tds_promo_h265.mp4"
	HeroVideoH264    = "/assets/tds_promo_h264.mp4"
	DiscordInviteURL = "https://discord.gg/kV7csu8sDH"
	MatrixRoomURL    = "https://matrix.to/#/#TDSD:matrix.org"
)

// VideoSource is one candidate encoding of the hero video.
type VideoSource struct {
	Src  string
	Type string
}

var (
	SourceAV1  = VideoSource{Src: HeroVideoAV1, Type: "video/webm; codecs=av1"}
	SourceVP9  = VideoSource{Src: HeroVideoVP9, Type: "video/webm; codecs=vp9"}
	SourceH265 = VideoSource{Src: HeroVideoH265, Type: "video/mp4; codecs=hvc1.1.6.L93.B0"}
	SourceH264 = VideoSource{Src: HeroVideoH264, Type: "video/mp4; codecs=avc1.640028"}
)
