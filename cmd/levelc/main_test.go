package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/archer/assets"
	"github.com/milk9111/archer/levels"
	"github.com/milk9111/archer/tilemap"
)

func TestBuildShippedLevel(t *testing.T) {
	sheet, err := assets.Sheet()
	if err != nil {
		t.Fatal(err)
	}
	data, err := levels.LevelsFS.ReadFile("level1.yaml")
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	in := filepath.Join(dir, "level1.yaml")
	out := filepath.Join(dir, "map.bin")
	if err := os.WriteFile(in, data, 0o644); err != nil {
		t.Fatal(err)
	}

	// The shipped level is valid under both policies.
	if err := build(in, out, sheet, tilemap.OutOfBoundsSolid); err != nil {
		t.Fatalf("build walled: %v", err)
	}
	if err := build(in, out, sheet, tilemap.OutOfBoundsEmpty); err != nil {
		t.Fatalf("build: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want, err := assets.LoadFile(assets.MapFile)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("compiled %d bytes, differs from shipped %d byte map", len(got), len(want))
	}
}

func TestBuildReportsBadSource(t *testing.T) {
	sheet, err := assets.Sheet()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.yaml")
	out := filepath.Join(dir, "bad.bin")
	if err := os.WriteFile(in, []byte("rows: [\"..\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err = build(in, out, sheet, tilemap.OutOfBoundsEmpty)
	if !errors.Is(err, levels.ErrNoPlayer) {
		t.Fatalf("err = %v, want ErrNoPlayer", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("output written for a failed build: %v", err)
	}
}

func TestBuildWalledPolicyChecksObjects(t *testing.T) {
	sheet, err := assets.Sheet()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	in := filepath.Join(dir, "open.yaml")
	out := filepath.Join(dir, "open.bin")
	src := "rows: [\"...\"]\nobjects:\n  - {type: Player, x: 0, y: 0}\n  - {type: Balloon, x: 400, y: 10}\n"
	if err := os.WriteFile(in, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := build(in, out, sheet, tilemap.OutOfBoundsEmpty); err != nil {
		t.Fatalf("open map: %v", err)
	}
	if err := os.Remove(out); err != nil {
		t.Fatal(err)
	}

	err = build(in, out, sheet, tilemap.OutOfBoundsSolid)
	if !errors.Is(err, levels.ErrOutsideMap) {
		t.Fatalf("walled map err = %v, want ErrOutsideMap", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("output written for a rejected level: %v", err)
	}
}
