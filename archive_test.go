package gamemaps

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"testing"
)

func TestArchive(t *testing.T) {
	head, data, walls, _ := twoMapFiles(t)

	a, err := OpenArchive(head, bytes.NewReader(data), nil)
	if err != nil {
		t.Fatal(err)
	}
	if a.Directory().RLEWTag != testTag {
		t.Fatalf("tag=%#x", a.Directory().RLEWTag)
	}

	maps := a.Maps()
	if len(maps) != 2 || maps[0].Slot != 3 || maps[1].Slot != 5 {
		t.Fatalf("maps = %+v", maps)
	}
	maps[0].Name = "changed"
	if h, _ := a.Header(3); h.Name != "Wolf1 Map4" {
		t.Fatal("Maps exposes internal headers")
	}
	if _, err := a.Header(4); !errors.Is(err, ErrMapNotFound) {
		t.Fatalf("want ErrMapNotFound, got %v", err)
	}

	all, err := a.LoadAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[0].Slot != 3 || all[1].Slot != 5 {
		t.Fatalf("LoadAll order wrong")
	}
	if !slices.Equal(all[1].Planes[0], walls) {
		t.Fatal("map 5 walls differ")
	}
}

func TestArchiveLoadAllCanceled(t *testing.T) {
	head, data, _, _ := twoMapFiles(t)
	a, err := OpenArchive(head, bytes.NewReader(data), nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := a.LoadAll(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestArchiveLoadAllFails(t *testing.T) {
	head, data := buildFiles(testTag, []fixtureMap{
		{slot: 0, planes: [HeaderPlanes][]byte{handPlane(), handPlane()}},
		{slot: 1, planes: [HeaderPlanes][]byte{handPlane(), {2, 0, 1, NearTag, 1}}},
	})
	a, err := OpenArchive(head, bytes.NewReader(data), nil)
	if err != nil {
		t.Fatal(err)
	}

	all, err := a.LoadAll(context.Background())
	if all != nil || !errors.Is(err, ErrCorruptToken) {
		t.Fatalf("got %v, %v", all, err)
	}
}

func TestOpenArchiveErrors(t *testing.T) {
	head, data, _, _ := twoMapFiles(t)
	if _, err := OpenArchive(head, nil, nil); err != ErrNilReader {
		t.Fatalf("want ErrNilReader, got %v", err)
	}
	if _, err := OpenArchive(head[:10], bytes.NewReader(data), nil); !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("want ErrTruncatedInput, got %v", err)
	}
}
