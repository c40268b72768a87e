package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/meshsculpt/pkg/mesh"
)

// WriteOBJ writes the built meshes as a Wavefront OBJ file, one object per
// mesh. OBJ vertex numbering is global and 1-based, so face indices carry a
// running offset across objects.
func WriteOBJ(w io.Writer, built []BuiltMesh, precision int) error {
	bw := bufio.NewWriter(w)

	offset := 1
	for _, entry := range built {
		if _, err := fmt.Fprintf(bw, "o %s\n", entry.Name); err != nil {
			return err
		}
		if err := writeObject(bw, entry.Mesh, offset, precision); err != nil {
			return err
		}
		offset += len(entry.Mesh.Vertices)
	}
	return bw.Flush()
}

// ExportOBJ writes the built meshes to a file.
func ExportOBJ(path string, built []BuiltMesh, precision int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteOBJ(f, built, precision); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func writeObject(w io.Writer, m mesh.Mesh, offset, precision int) error {
	for _, v := range m.Vertices {
		_, err := fmt.Fprintf(w, "v %.*f %.*f %.*f\n",
			precision, v.Position[0],
			precision, v.Position[1],
			precision, v.Position[2])
		if err != nil {
			return err
		}
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		_, err := fmt.Fprintf(w, "f %d %d %d\n",
			int(m.Indices[i])+offset,
			int(m.Indices[i+1])+offset,
			int(m.Indices[i+2])+offset)
		if err != nil {
			return err
		}
	}
	return nil
}
