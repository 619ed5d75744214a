package catalog

var (
	Expression = register("expression",
		Option{"happy", "Senang"},
		Option{"sad", "Sedih"},
		Option{"angry", "Marah"},
		Option{"surprised", "Terkejut"},
		Option{"neutral", "Netral"},
		Option{"scared", "Takut"},
		Option{"confused", "Bingung"},
		Option{"determined", "Bertekad"},
		Option{"excited", "Bersemangat"},
		Option{"tired", "Lelah"},
	)

	Action = register("action",
		Option{"standing", "Berdiri"},
		Option{"sitting", "Duduk"},
		Option{"walking", "Berjalan"},
		Option{"running", "Berlari"},
		Option{"fighting", "Bertarung"},
		Option{"talking", "Berbicara"},
		Option{"listening", "Mendengarkan"},
		Option{"thinking", "Berpikir"},
		Option{"sleeping", "Tidur"},
		Option{"eating", "Makan"},
	)

	Interaction = register("interaction",
		Option{"talking_to", "Berbicara dengan"},
		Option{"looking_at", "Melihat"},
		Option{"pointing_at", "Menunjuk"},
		Option{"fighting_with", "Bertarung dengan"},
		Option{"helping", "Membantu"},
		Option{"following", "Mengikuti"},
		Option{"running_from", "Lari dari"},
		Option{"hiding_from", "Bersembunyi dari"},
		Option{"searching_for", "Mencari"},
		Option{"waiting_for", "Menunggu"},
	)

	BodyPart = register("bodyPart",
		Option{"head", "Kepala"},
		Option{"face", "Wajah"},
		Option{"eyes", "Mata"},
		Option{"mouth", "Mulut"},
		Option{"hands", "Tangan"},
		Option{"arms", "Lengan"},
		Option{"legs", "Kaki"},
		Option{"chest", "Dada"},
		Option{"back", "Punggung"},
		Option{"whole_body", "Seluruh Badan"},
	)

	CameraAngle = register("cameraAngle",
		Option{"front", "Depan"},
		Option{"side", "Samping"},
		Option{"back", "Belakang"},
		Option{"high_angle", "Sudut Tinggi"},
		Option{"low_angle", "Sudut Rendah"},
		Option{"close_up", "Close Up"},
		Option{"wide_shot", "Wide Shot"},
		Option{"over_shoulder", "Over Shoulder"},
		Option{"bird_eye", "Bird's Eye View"},
		Option{"dutch_angle", "Dutch Angle"},
	)

	Lighting = register("lighting",
		Option{"natural", "Natural"},
		Option{"dramatic", "Dramatis"},
		Option{"soft", "Soft"},
		Option{"harsh", "Keras"},
		Option{"backlit", "Backlit"},
		Option{"rim_light", "Rim Light"},
		Option{"low_key", "Low Key"},
		Option{"high_key", "High Key"},
		Option{"colored", "Berwarna"},
		Option{"noir", "Noir"},
	)

	Style = register("style",
		Option{"realistic", "Realistis"},
		Option{"cartoon", "Kartun"},
		Option{"anime", "Anime"},
		Option{"comic", "Komik"},
		Option{"watercolor", "Cat Air"},
		Option{"sketch", "Sketsa"},
		Option{"pixel", "Pixel Art"},
		Option{"3d", "3D"},
		Option{"vector", "Vektor"},
		Option{"painterly", "Lukisan"},
	)

	Effect = register("effect",
		Option{"none", "Tidak Ada"},
		Option{"blur", "Blur"},
		Option{"glow", "Glow"},
		Option{"smoke", "Asap"},
		Option{"fire", "Api"},
		Option{"water", "Air"},
		Option{"wind", "Angin"},
		Option{"rain", "Hujan"},
		Option{"snow", "Salju"},
		Option{"particles", "Partikel"},
	)

	Time = register("time",
		Option{"morning", "Pagi"},
		Option{"noon", "Siang"},
		Option{"afternoon", "Sore"},
		Option{"evening", "Petang"},
		Option{"night", "Malam"},
		Option{"dawn", "Fajar"},
		Option{"dusk", "Senja"},
	)

	Atmosphere = register("atmosphere",
		Option{"clear", "Cerah"},
		Option{"cloudy", "Berawan"},
		Option{"rainy", "Hujan"},
		Option{"foggy", "Berkabut"},
		Option{"stormy", "Badai"},
		Option{"sunny", "Terik"},
		Option{"dark", "Gelap"},
		Option{"mysterious", "Misterius"},
		Option{"peaceful", "Tenang"},
		Option{"tense", "Mencekam"},
	)

	SoundFX = register("soundFX",
		Option{"none", "Tidak Ada"},
		Option{"whoosh", "Whoosh"},
		Option{"bang", "Bang"},
		Option{"boom", "Boom"},
		Option{"crash", "Crash"},
		Option{"splash", "Splash"},
		Option{"thud", "Thud"},
		Option{"custom", "Custom"},
	)

	LineFX = register("lineFX",
		Option{"none", "Tidak Ada"},
		Option{"speed_lines", "Speed Lines"},
		Option{"impact_lines", "Impact Lines"},
		Option{"motion_lines", "Motion Lines"},
		Option{"focus_lines", "Focus Lines"},
		Option{"energy_lines", "Energy Lines"},
		Option{"custom", "Custom"},
	)

	SpeechBubble = register("speechBubble",
		Option{"normal", "Normal"},
		Option{"thought", "Pikiran"},
		Option{"whisper", "Bisikan"},
		Option{"shout", "Teriakan"},
		Option{"narrator", "Narator"},
		Option{"system", "System"},
	)

	Texture = register("texture",
		Option{"halus", "Halus"},
		Option{"kasar", "Kasar"},
		Option{"gradasi", "Gradasi"},
		Option{"polos", "Polos"},
		Option{"bertekstur", "Bertekstur"},
		Option{"berpola", "Berpola"},
		Option{"abstrak", "Abstrak"},
	)

	Background = register("background",
		Option{"kota", "Kota"},
		Option{"desa", "Desa"},
		Option{"gunung", "Gunung"},
		Option{"pantai", "Pantai"},
		Option{"hutan", "Hutan"},
		Option{"sekolah", "Sekolah"},
		Option{"rumah", "Rumah"},
		Option{"jalan", "Jalan"},
		Option{"taman", "Taman"},
		Option{"kantor", "Kantor"},
	)

	VFX = register("vfx",
		Option{"none", "Tidak Ada"},
		Option{"blur", "Blur"},
		Option{"glow", "Glow"},
		Option{"smoke", "Asap"},
		Option{"fire", "Api"},
		Option{"water", "Air"},
		Option{"rain", "Hujan"},
		Option{"snow", "Salju"},
		Option{"particles", "Partikel"},
	)

	MotionFX = register("motionFX",
		Option{"none", "Tidak Ada"},
		Option{"speed_lines", "Speed Lines"},
		Option{"motion_blur", "Motion Blur"},
		Option{"impact_lines", "Impact Lines"},
		Option{"focus_lines", "Focus Lines"},
		Option{"energy_lines", "Energy Lines"},
	)

	SoundFXScene = register("soundFXScene",
		Option{"none", "Tidak Ada"},
		Option{"whoosh", "Whoosh"},
		Option{"bang", "Bang"},
		Option{"boom", "Boom"},
		Option{"crash", "Crash"},
		Option{"splash", "Splash"},
		Option{"thud", "Thud"},
		Option{"custom", "Custom"},
	)

	PanelSize = register("panelSize",
		Option{"kecil", "Kecil"},
		Option{"sedang", "Sedang"},
		Option{"besar", "Besar"},
	)

	PanelRatio = register("panelRatio",
		Option{"1:1", "1:1"},
		Option{"4:3", "4:3"},
		Option{"16:9", "16:9"},
		Option{"2:1", "2:1"},
		Option{"3:2", "3:2"},
		Option{"9:16", "9:16"},
	)

	PanelType = register("panelType",
		Option{"biasa", "Biasa"},
		Option{"splash", "Splash"},
		Option{"inset", "Inset"},
		Option{"overlap", "Overlap"},
		Option{"borderless", "Borderless"},
	)

	PanelOrientation = register("panelOrientation",
		Option{"landscape", "Landscape"},
		Option{"portrait", "Portrait"},
	)

	PeoplePresent = register("peoplePresent",
		Option{"none", "Tidak ada orang"},
		Option{"ramai", "Ramai orang"},
		Option{"beberapa", "Beberapa orang"},
		Option{"satu", "Satu orang"},
		Option{"kerumunan", "Kerumunan"},
		Option{"keluarga", "Keluarga"},
		Option{"teman", "Teman"},
	)

	RenderQuality = register("renderQuality",
		Option{"simple", "Simple"},
		Option{"normal", "Biasa"},
		Option{"detail", "Detail"},
		Option{"high_detail", "High Detail"},
		Option{"artistic", "Artistic"},
	)
)
