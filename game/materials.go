package game

import "github.com/loliomg/hitcat/assets"

// LoadMaterials decodes the hammer and hole sprites.
func LoadMaterials() (Materials, error) {
	hammer, err := assets.Load(assets.Hammer)
	if err != nil {
		return Materials{}, err
	}
	hole, err := assets.Load(assets.Cat)
	if err != nil {
		return Materials{}, err
	}
	return Materials{Hammer: hammer, Hole: hole}, nil
}
