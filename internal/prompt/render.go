package prompt

import (
	"fmt"
	"strings"
)

var renderInstructions = map[string][]string{
	"artistic": {
		"Buat gambar dengan pendekatan artistik yang kuat. Fokus pada:",
		"1. Detail yang kaya dan kompleks dalam setiap elemen",
		"2. Komposisi yang menonjolkan nilai estetika dan keseimbangan visual",
		"3. Penggunaan warna yang ekspresif dan harmonis",
		"4. Tekstur yang terasa dan dimensi yang dalam",
		"5. Pencahayaan yang dramatis untuk menciptakan suasana yang kuat",
	},
	"realistic": {
		"Buat gambar dengan detail fotorealistik yang menakjubkan. Perhatikan:",
		"1. Detail mikroskopis pada setiap permukaan dan tekstur",
		"2. Pencahayaan natural dengan bayangan yang akurat",
		"3. Gradasi warna yang halus dan natural",
		"4. Refleksi dan transparansi yang realistis",
		"5. Kedalaman bidang yang terasa melalui perspektif yang tepat",
	},
	"stylized": {
		"Buat gambar dengan gaya yang unik dan khas. Tekankan:",
		"1. Elemen desain yang berani dan tidak konvensional",
		"2. Interpretasi kreatif dari bentuk dan warna",
		"3. Distorsi proporsi yang disengaja untuk efek visual",
		"4. Penggunaan warna yang tidak natural tapi harmonis",
		"5. Tekstur dan pola yang unik dan mencolok",
	},
	"cartoon": {
		"Buat gambar dengan gaya kartun yang ceria dan menarik. Fokus pada:",
		"1. Garis yang jelas, tebal, dan konsisten",
		"2. Warna-warna yang hidup dan cerah",
		"3. Ekspresi wajah yang berlebihan dan ekspresif",
		"4. Proporsi yang dinamis dan menarik",
		"5. Bayangan dan highlight yang sederhana tapi efektif",
	},
	"sketch": {
		"Buat gambar dengan gaya sketsa yang ekspresif. Perhatikan:",
		"1. Goresan tangan yang terlihat dan dinamis",
		"2. Detail yang minimalis tapi esensial",
		"3. Tekstur kertas yang terasa",
		"4. Bayangan yang dibuat dengan garis atau cross-hatching",
		"5. Kesederhanaan yang tetap mempertahankan karakter",
	},
	"painterly": {
		"Buat gambar dengan gaya lukisan tradisional. Tekankan:",
		"1. Sapuan kuas yang terlihat dan ekspresif",
		"2. Tekstur cat yang kaya dan berlapis",
		"3. Blending warna yang halus dan natural",
		"4. Dimensi yang tercipta melalui teknik impasto",
		"5. Karakteristik media cat yang terasa",
	},
	"anime": {
		"Buat gambar dengan gaya anime Jepang yang khas. Fokus pada:",
		"1. Proporsi karakter yang dinamis dan menarik",
		"2. Ekspresi wajah yang kuat dan emosional",
		"3. Garis yang bersih dan konsisten",
		"4. Warna yang cerah dan kontras yang kuat",
		"5. Efek khusus yang khas anime (speed lines, impact frames)",
	},
	"pixel": {
		"Buat gambar dengan gaya pixel art yang retro. Perhatikan:",
		"1. Grid pixel yang jelas dan konsisten",
		"2. Palet warna yang terbatas tapi efektif",
		"3. Dithering untuk gradasi warna",
		"4. Silhouette yang mudah dikenali",
		"5. Detail yang disederhanakan tapi tetap informatif",
	},
	"watercolor": {
		"Buat gambar dengan gaya cat air yang lembut. Tekankan:",
		"1. Transparansi dan efek bleeding yang khas",
		"2. Gradasi warna yang halus dan natural",
		"3. Tekstur kertas yang terlihat",
		"4. Sapuan kuas yang lembut dan mengalir",
		"5. Efek serendipity dalam pencampuran warna",
	},
	"3d": {
		"Buat gambar dengan tampilan 3D yang realistis. Fokus pada:",
		"1. Dimensi dan perspektif yang akurat",
		"2. Bayangan dan pencahayaan yang realistis",
		"3. Tekstur permukaan yang detail",
		"4. Refleksi dan transparansi yang natural",
		"5. Depth of field yang tepat",
	},
	"simple": {
		"Buat gambar dengan gaya sederhana yang efektif. Perhatikan:",
		"1. Garis yang bersih dan minimalis",
		"2. Warna yang flat dan tidak terlalu kompleks",
		"3. Komposisi yang jelas dan mudah dibaca",
		"4. Detail yang esensial saja",
		"5. Bayangan yang sederhana tapi efektif",
	},
}

// RenderQualities lists the render quality values with a dedicated
// instruction block, in the order the form offers them.
var RenderQualities = []string{
	"artistic", "realistic", "stylized", "cartoon", "sketch", "painterly",
	"anime", "pixel", "watercolor", "3d", "simple",
}

func KnownRenderQuality(quality string) bool {
	_, ok := renderInstructions[quality]
	return ok
}

// Instruction returns the guidance block for a render quality. Values
// without a dedicated block get a generic sentence naming them.
func Instruction(quality string) string {
	if lines, ok := renderInstructions[quality]; ok {
		return strings.Join(lines, "\n")
	}
	return fmt.Sprintf("Buat gambar dengan gaya %s, pastikan untuk menekankan karakteristik unik dari gaya tersebut.", quality)
}
