package foodserver

import (
	"bytes"
	"fmt"
	"os"

	"foodadmin/internal/food"
	"foodadmin/internal/jsonutil"
)

// LoadSeed reads foods from a JSON file. Both a json-server style database
// ({"foods": [...]}) and a bare array are accepted.
func LoadSeed(path string) ([]food.Food, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %q: %w", path, err)
	}
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return jsonutil.UnmarshalArrayAllowEmpty[food.Food](data, "parse seed "+path)
	}
	var db struct {
		Foods []food.Food `json:"foods"`
	}
	if err := jsonutil.UnmarshalWithContext(data, &db, "parse seed "+path); err != nil {
		return nil, err
	}
	if db.Foods == nil {
		db.Foods = []food.Food{}
	}
	return db.Foods, nil
}

// DefaultMenu is served when no seed file is given.
func DefaultMenu() []food.Food {
	return []food.Food{
		{
			ID:          1,
			Name:        "Ao molho",
			Description: "Macarrão ao molho branco, fughi e cheiro verde das montanhas.",
			Price:       "19.90",
			Available:   true,
			Image:       "https://storage.googleapis.com/golden-wind/bootcamp-gostack/desafio-food/food1.png",
		},
		{
			ID:          2,
			Name:        "Veggie",
			Description: "Macarrão com pimentão, ervilha e ervas finas colhidas no himalaia.",
			Price:       "21.90",
			Available:   true,
			Image:       "https://storage.googleapis.com/golden-wind/bootcamp-gostack/desafio-food/food2.png",
		},
		{
			ID:          3,
			Name:        "A la Camarón",
			Description: "Macarrão com vegetais de primeira linha e camarão dos 7 mares.",
			Price:       "25.90",
			Available:   false,
			Image:       "https://storage.googleapis.com/golden-wind/bootcamp-gostack/desafio-food/food3.png",
		},
	}
}
