package memtag_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/memtag"
	"github.com/hupe1980/memtag/emulator"
)

// Example_storeTag tags a 64-byte region and reads the tags back.
func Example_storeTag() {
	m := emulator.New(emulator.WithInitialControl(memtag.ModeSync, memtag.AllTags))
	ctl, err := memtag.NewController(m)
	if err != nil {
		log.Fatal(err)
	}
	e := memtag.New(m, ctl)

	r := memtag.NewRegion(m.Alloc(64))
	e.StoreTag(r, 7)

	fmt.Println(e.Tags(r))
	// Output: [7 7 7 7]
}

// Example_randomize stamps a region with an adjacent-distinct tag sequence
// that never uses tag 0.
func Example_randomize() {
	m := emulator.New()
	ctl, err := memtag.NewController(m)
	if err != nil {
		log.Fatal(err)
	}
	ctl.SetModeWithTags(memtag.ModeSync, memtag.AllTags.Exclude(0))
	e := memtag.New(m, ctl)

	r := memtag.NewRegion(m.Alloc(96))
	e.RandomizeFrom(r, 14)

	fmt.Println(e.Tags(r))
	// Output: [14 15 1 2 3 4]
}

// Example_migratePreserving moves data together with its tags.
func Example_migratePreserving() {
	m := emulator.New(emulator.WithInitialControl(memtag.ModeSync, memtag.AllTags))
	ctl, err := memtag.NewController(m)
	if err != nil {
		log.Fatal(err)
	}
	e := memtag.New(m, ctl)

	src := memtag.NewRegion(m.Alloc(64))
	copy(src.Bytes(), "tagged payload")
	e.RandomizeFrom(src, 3)

	dst := memtag.NewRegion(m.Alloc(64))
	e.MigratePreserving(src, dst)

	fmt.Println(e.Tags(dst), string(dst.Bytes()[:14]))
	// Output: [3 4 5 6] tagged payload
}
