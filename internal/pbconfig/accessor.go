package pbconfig

// Paths is a point-in-time view of every resolved location.
type Paths struct {
	PropBankFile string `yaml:"propbank_file"`
	TreeBankDir  string `yaml:"treebank_dir"`
	FrameDir     string `yaml:"frame_dir"`
}

// Accessor resolves locations against a Source. It holds no mutable state
// and is safe for concurrent use as long as its Source is.
type Accessor struct {
	source Source
}

// New creates an Accessor backed by source. A nil source reads the process
// environment.
func New(source Source) *Accessor {
	if source == nil {
		source = EnvSource()
	}
	return &Accessor{source: source}
}

// Resolve returns the override stored under key, or the key's default when
// the override is missing or empty. The override is returned verbatim.
// A key set to "" counts as unset, unlike a JVM system property lookup.
// The result is non-empty only for known keys; an unknown key has no default
// and yields "" when not overridden.
func (a *Accessor) Resolve(key Key) string {
	if a != nil && a.source != nil {
		if v, ok := a.source.Lookup(string(key)); ok && v != "" {
			return v
		}
	}
	return Default(key)
}

// Overridden reports whether key currently has a non-empty override.
func (a *Accessor) Overridden(key Key) bool {
	if a == nil || a.source == nil {
		return false
	}
	v, ok := a.source.Lookup(string(key))
	return ok && v != ""
}

// PropBankFile returns the PropBank index file path.
func (a *Accessor) PropBankFile() string {
	return a.Resolve(PropBankFileKey)
}

// TreeBankDir returns the treebank directory path.
func (a *Accessor) TreeBankDir() string {
	return a.Resolve(TreeBankDirKey)
}

// FrameDir returns the frame directory path.
func (a *Accessor) FrameDir() string {
	return a.Resolve(FrameDirKey)
}

// Snapshot resolves all three locations.
func (a *Accessor) Snapshot() Paths {
	return Paths{
		PropBankFile: a.PropBankFile(),
		TreeBankDir:  a.TreeBankDir(),
		FrameDir:     a.FrameDir(),
	}
}

var envAccessor = New(EnvSource())

// PropBankFile returns the PropBank index file path from the environment.
func PropBankFile() string {
	return envAccessor.PropBankFile()
}

// TreeBankDir returns the treebank directory path from the environment.
func TreeBankDir() string {
	return envAccessor.TreeBankDir()
}

// FrameDir returns the frame directory path from the environment.
func FrameDir() string {
	return envAccessor.FrameDir()
}
