package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/objwire/objwire/abi"
	"github.com/objwire/objwire/geom"
)

type namedPolyhedron struct {
	name string
	poly geom.Polyhedron
}

func main() {
	var (
		sceneFile   = flag.String("scene", "", "Path to a TOML scene file")
		useRef      = flag.Bool("ref", false, "Include the reference payload")
		outFile     = flag.String("out", "", "Write the first payload's bytes to a file")
		inFile      = flag.String("in", "", "Decode a payload file instead of encoding")
		capacity    = flag.Int("cap", 64, "Triangle capacity of the decode destination")
		hexDumpFlag = flag.Bool("hex", false, "Print a hex dump of each payload")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		dev, err := zap.NewDevelopment()
		if err == nil {
			logger = dev
		}
	}
	sess := abi.NewSession(abi.WithLogger(logger))

	if *inFile != "" {
		if err := decodeFile(sess, *inFile, *capacity); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	polys, err := collectPayloads(*sceneFile, *useRef)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(polys) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: objview -ref [-hex] [-out file]")
		fmt.Fprintln(os.Stderr, "       objview -scene scene.toml [-hex]")
		fmt.Fprintln(os.Stderr, "       objview -in payload.bin [-cap n]")
		fmt.Fprintln(os.Stderr, "       objview -ref -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(sess, polys); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := inspect(sess, polys, *hexDumpFlag, *outFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func collectPayloads(scenePath string, useRef bool) ([]namedPolyhedron, error) {
	var polys []namedPolyhedron
	if useRef {
		polys = append(polys, namedPolyhedron{name: "reference", poly: abi.ReferencePolyhedron()})
	}
	if scenePath != "" {
		loaded, err := loadScene(scenePath)
		if err != nil {
			return nil, err
		}
		polys = append(polys, loaded...)
	}
	return polys, nil
}

func inspect(sess *abi.Session, polys []namedPolyhedron, dump bool, outFile string) error {
	styled := term.IsTerminal(int(os.Stdout.Fd()))

	for i, np := range polys {
		buf := make([]byte, np.poly.WireSize())
		n := sess.Serialize(&np.poly, buf)
		if n < 0 {
			return fmt.Errorf("serialize %s: %s", np.name, abi.Code(n))
		}

		fmt.Printf("%s: %d triangles, %d bytes\n",
			renderName(np.name, styled), len(np.poly.Triangles), n)

		// Round-trip so the reported payload is known-good.
		dst := geom.NewPolyhedron(len(np.poly.Triangles))
		m := sess.Deserialize(&dst, buf[:n])
		if m < 0 {
			return fmt.Errorf("round-trip %s: %s", np.name, abi.Code(m))
		}
		if m != n {
			return fmt.Errorf("round-trip %s: wrote %d bytes but consumed %d", np.name, n, m)
		}

		if dump {
			fmt.Print(hexDump(buf[:n]))
		}

		if outFile != "" && i == 0 {
			if err := os.WriteFile(outFile, buf[:n], 0o644); err != nil {
				return fmt.Errorf("write payload: %w", err)
			}
			fmt.Printf("wrote %d bytes to %s\n", n, outFile)
		}
	}
	return nil
}

func decodeFile(sess *abi.Session, path string, capacity int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dst := geom.NewPolyhedron(capacity)
	n := sess.Deserialize(&dst, data)
	if n < 0 {
		return fmt.Errorf("deserialize: %s", abi.Code(n))
	}

	fmt.Printf("%s: %d bytes consumed, %d triangles\n", path, n, len(dst.Triangles))
	for i, t := range dst.Triangles {
		fmt.Printf("  [%d] %s\n", i, t)
	}
	return nil
}

func hexDump(b []byte) string {
	var sb strings.Builder
	for off := 0; off < len(b); off += 16 {
		end := off + 16
		if end > len(b) {
			end = len(b)
		}
		row := b[off:end]

		fmt.Fprintf(&sb, "  %08x  ", off)
		for i := 0; i < 16; i++ {
			if i < len(row) {
				fmt.Fprintf(&sb, "%02x ", row[i])
			} else {
				sb.WriteString("   ")
			}
			if i == 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(" |")
		for _, c := range row {
			if c >= 0x20 && c < 0x7f {
				sb.WriteByte(c)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}
