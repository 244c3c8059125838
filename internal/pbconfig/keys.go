package pbconfig

// Key names an overridable location.
type Key string

const (
	// PropBankFileKey overrides the location of the PropBank index file.
	PropBankFileKey Key = "PROPBANKFILE"
	// TreeBankDirKey overrides the root of the treebank data.
	TreeBankDirKey Key = "TREEBANKDIR"
	// FrameDirKey overrides the root of the frame-definition files.
	FrameDirKey Key = "FRAMEDIR"
)

// Defaults are relative to the working directory of the calling process.
const (
	defaultPropBankFile = "data/prop-all.idx"
	defaultTreeBankDir  = "data/ltagtb"
	defaultFrameDir     = "data/frames"
)

var defaults = map[Key]string{
	PropBankFileKey: defaultPropBankFile,
	TreeBankDirKey:  defaultTreeBankDir,
	FrameDirKey:     defaultFrameDir,
}

// Keys returns every known key in a stable order.
func Keys() []Key {
	return []Key{PropBankFileKey, TreeBankDirKey, FrameDirKey}
}

// Default returns the compiled-in value for key, or "" for an unknown key.
func Default(key Key) string {
	return defaults[key]
}

// Defaults returns a copy of the key to default mapping.
func Defaults() map[Key]string {
	out := make(map[Key]string, len(defaults))
	for k, v := range defaults {
		out[k] = v
	}
	return out
}

// Known reports whether key is one of the recognised location keys.
func Known(key Key) bool {
	_, ok := defaults[key]
	return ok
}

func (k Key) String() string {
	return string(k)
}
