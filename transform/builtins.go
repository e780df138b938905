package transform

import "fmt"

// RegisterBuiltins registers the frozen set of library transforms:
// identity; the 8 rigid motions; the 10 colour filters; invert;
// transpose; the 2 flips; compress; toOrigin; cut; splitCols;
// colorMap; fillHoles; removeNoise; extractPattern; replicate. 32
// entries total. Safe to call at most once per Library — returns
// ErrDuplicateName on a second call against the same Library.
func RegisterBuiltins(lib *Library) error {
	reg := func(name string, fn Func, cost uint8, listed bool) error {
		_, err := lib.Register(name, fn, cost, listed)
		if err != nil {
			return fmt.Errorf("transform: registering %q: %w", name, err)
		}
		return nil
	}

	if err := reg("identity", identityFn, 1, false); err != nil {
		return err
	}
	for i := 0; i < 8; i++ {
		if err := reg(fmt.Sprintf("rigid_%d", i), rigidFn(i), 2, true); err != nil {
			return err
		}
	}
	for c := int8(0); c <= 9; c++ {
		if err := reg(fmt.Sprintf("filterCol_%d", c), filterColFn(c), 2, true); err != nil {
			return err
		}
	}
	if err := reg("invert", invertFn, 2, true); err != nil {
		return err
	}
	if err := reg("transpose", transposeFn, 2, true); err != nil {
		return err
	}
	if err := reg("flipH", flipHFn, 2, true); err != nil {
		return err
	}
	if err := reg("flipV", flipVFn, 2, true); err != nil {
		return err
	}
	if err := reg("compress", compressFn, 3, true); err != nil {
		return err
	}
	if err := reg("toOrigin", toOriginFn, 1, true); err != nil {
		return err
	}
	if err := reg("cut", cutFn, 4, true); err != nil {
		return err
	}
	if err := reg("splitCols", splitColsFn, 4, true); err != nil {
		return err
	}
	if err := reg("colorMap", colorMapFn, 5, true); err != nil {
		return err
	}
	if err := reg("fillHoles", fillHolesFn, 4, true); err != nil {
		return err
	}
	if err := reg("removeNoise", removeNoiseFn, 3, true); err != nil {
		return err
	}
	if err := reg("extractPattern", extractPatternFn, 5, true); err != nil {
		return err
	}
	if err := reg("replicate", replicateFn, 6, true); err != nil {
		return err
	}
	return nil
}
