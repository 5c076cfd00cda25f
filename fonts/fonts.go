package fonts

import (
	"fmt"
	"log"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Body  FontName = "body"
	Bold  FontName = "bold"
	Title FontName = "title"
	Small FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face returns the font wrapped for text/v2 consumers such as ebitenui.
func (f FontName) Face() text.Face {
	if face, ok := uiFaces[f]; ok {
		return face
	}
	face := text.NewGoXFace(getFont(f))
	uiFaces[f] = face
	return face
}

var (
	fonts   = map[FontName]font.Face{}
	uiFaces = map[FontName]text.Face{}
)

// LoadDefaults registers the bundled Go fonts under every name.
func LoadDefaults() {
	LoadFontWithSize(Body, goregular.TTF, 16)
	LoadFontWithSize(Bold, gobold.TTF, 18)
	LoadFontWithSize(Title, gobold.TTF, 24)
	LoadFontWithSize(Small, goregular.TTF, 12)
}

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		log.Printf("Warning: Could not parse font %s: %v", name, err)
		return
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	delete(uiFaces, name)
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
