package codec

import (
	"cmp"
	"slices"
)

// SaveOptional writes a presence flag followed by *v when v is non-nil.
func SaveOptional[T any](e *Encoder, v *T, save func(*Encoder, T)) {
	if v == nil {
		e.Bool(false)
		return
	}

	e.Bool(true)
	save(e, *v)
}

// CheckOptional validates an optional value.
func CheckOptional(p *Probe, check func(*Probe) bool) bool {
	present, ok := p.Uint8()
	if !ok || present > 1 {
		return false
	}

	return present == 0 || check(p)
}

// LoadOptional returns nil for an absent value.
func LoadOptional[T any](d *Decoder, load func(*Decoder) T) *T {
	if !d.Bool() {
		return nil
	}

	v := load(d)

	return &v
}

// SaveSlice writes a count followed by every element.
func SaveSlice[T any](e *Encoder, s []T, save func(*Encoder, T)) {
	e.Uint64(uint64(len(s)))

	for _, v := range s {
		save(e, v)
	}
}

// CheckSlice validates a sequence.
func CheckSlice(p *Probe, check func(*Probe) bool) bool {
	n, ok := p.Count()
	if !ok {
		return false
	}

	for range n {
		if !check(p) {
			return false
		}
	}

	return true
}

// LoadSlice returns nil for an empty sequence.
func LoadSlice[T any](d *Decoder, load func(*Decoder) T) []T {
	n := d.Size()
	if n == 0 {
		return nil
	}

	s := make([]T, 0, n)
	for range n {
		if d.Err() != nil {
			return nil
		}

		s = append(s, load(d))
	}

	return s
}

// SaveMap writes a count followed by the entries in ascending key order, so
// equal maps always produce equal bytes.
func SaveMap[K cmp.Ordered, V any](e *Encoder, m map[K]V, saveKey func(*Encoder, K), saveValue func(*Encoder, V)) {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	e.Uint64(uint64(len(keys)))

	for _, k := range keys {
		saveKey(e, k)
		saveValue(e, m[k])
	}
}

// CheckMap validates a map. A key seen twice is a validation failure.
func CheckMap[K comparable](p *Probe, key func(*Probe) (K, bool), check func(*Probe) bool) bool {
	n, ok := p.Count()
	if !ok {
		return false
	}

	seen := make(map[K]struct{}, min(n, 1024))

	for range n {
		k, ok := key(p)
		if !ok {
			return false
		}

		if _, dup := seen[k]; dup {
			return false
		}

		seen[k] = struct{}{}

		if !check(p) {
			return false
		}
	}

	return true
}

// LoadMap returns nil for an empty map.
func LoadMap[K comparable, V any](d *Decoder, loadKey func(*Decoder) K, loadValue func(*Decoder) V) map[K]V {
	n := d.Size()
	if n == 0 {
		return nil
	}

	m := make(map[K]V, n)
	for range n {
		if d.Err() != nil {
			return nil
		}

		k := loadKey(d)
		m[k] = loadValue(d)
	}

	return m
}
