package meshing

import "VoxelVision/shared/voxel"

// solidCube gera um cubo maciço size³ a partir da origem.
func solidCube(size int32) []voxel.Coord {
	var out []voxel.Coord
	for x := int32(0); x < size; x++ {
		for y := int32(0); y < size; y++ {
			for z := int32(0); z < size; z++ {
				out = append(out, voxel.NewCoord(x, y, z))
			}
		}
	}
	return out
}

// hollowShell gera piso + quatro paredes (sem teto), como o backend de teste.
func hollowShell(size int32) []voxel.Coord {
	var out []voxel.Coord
	for _, c := range solidCube(size) {
		if c.X == 0 || c.X == size-1 || c.Z == 0 || c.Z == size-1 || c.Y == 0 {
			out = append(out, c)
		}
	}
	return out
}

// translate desloca todas as coordenadas por d.
func translate(coords []voxel.Coord, d voxel.Coord) []voxel.Coord {
	out := make([]voxel.Coord, len(coords))
	for i, c := range coords {
		out[i] = c.Add(d)
	}
	return out
}
