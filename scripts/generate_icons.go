//go:build ignore

// Скрипт для генерации иконок трея.
// Запуск: go run scripts/generate_icons.go
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

const size = 64

func main() {
	dir := "embedded"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Не удалось создать директорию %s: %v", dir, err)
	}

	icons := []struct {
		name  string
		color color.RGBA
	}{
		{"icon_on.png", color.RGBA{46, 160, 67, 255}},   // Зелёный
		{"icon_off.png", color.RGBA{200, 55, 55, 255}},  // Красный
		{"icon_busy.png", color.RGBA{230, 160, 50, 255}}, // Оранжевый
	}

	for _, icon := range icons {
		path := filepath.Join(dir, icon.name)
		if err := generateIcon(path, icon.color); err != nil {
			log.Fatalf("Ошибка генерации %s: %v", icon.name, err)
		}
		log.Printf("Создан: %s", path)
	}
}

// generateIcon рисует цветной круг с двумя встречными стрелками
// (переключение раскладки).
func generateIcon(path string, c color.RGBA) error {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	white := color.RGBA{255, 255, 255, 255}

	centerX, centerY := size/2, size/2
	radius := 28.0

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x - centerX)
			dy := float64(y - centerY)
			if dx*dx+dy*dy <= radius*radius {
				img.Set(x, y, c)
			}
		}
	}

	// Верхняя стрелка вправо, нижняя влево
	arrow(img, 22, 16, 46, 1, white)
	arrow(img, 40, 18, 48, -1, white)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

// arrow рисует горизонтальную стрелку на строке y от x0 до x1;
// dir задаёт, на каком конце наконечник.
func arrow(img *image.RGBA, y, x0, x1, dir int, c color.RGBA) {
	for yy := y - 2; yy <= y+2; yy++ {
		for x := x0; x <= x1; x++ {
			img.Set(x, yy, c)
		}
	}
	tip := x1
	if dir < 0 {
		tip = x0
	}
	for i := 0; i <= 7; i++ {
		for yy := y - 7 + i; yy <= y+7-i; yy++ {
			img.Set(tip+dir*i, yy, c)
		}
	}
}
