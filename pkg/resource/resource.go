package resource

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"hash"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Kind identifies the HTML tag family a resource renders to.
type Kind int

const (
	// KindScript renders as a <script> tag.
	KindScript Kind = iota
	// KindLink renders as a generic <link> tag.
	KindLink
	// KindStyle renders as a stylesheet <link> tag.
	KindStyle
)

// String returns the kind identifier used in manifests and logs.
func (k Kind) String() string {
	switch k {
	case KindScript:
		return "script"
	case KindStyle:
		return "style"
	default:
		return "link"
	}
}

// HashAlgorithm names the digest used for file hashes and subresource
// integrity values.
type HashAlgorithm string

// Supported hash algorithms.
const (
	SHA256 HashAlgorithm = "sha256"
	SHA384 HashAlgorithm = "sha384"
	SHA512 HashAlgorithm = "sha512"
)

// DefaultHashAlgorithm is used when no algorithm is configured.
const DefaultHashAlgorithm = SHA384

// DefaultUniquePrefix is the URL segment prefix for unique resource keys.
const DefaultUniquePrefix = "++webresource++"

// uniqueNamespace is the fixed UUID namespace for unique resource keys.
var uniqueNamespace = uuid.MustParse("f3341b2e-f97e-40d2-ad2f-10a08a778877")

func (a HashAlgorithm) hasher() (hash.Hash, error) {
	switch a {
	case SHA256:
		return sha256.New(), nil
	case SHA384:
		return sha512.New384(), nil
	case SHA512:
		return sha512.New(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, a)
}

// Options configures a resource constructor. Name, Depends and one of
// File or URL are the interesting fields; everything else refines how
// the HTML tag and the resource URL are rendered. Fields that do not
// apply to the constructed kind are ignored.
type Options struct {
	// Name is the unique resource name referenced by dependents.
	Name string
	// Depends lists the names of resources this one depends on.
	Depends []string
	// Directory is the local directory containing the resource files.
	// When empty it is inherited from the enclosing group.
	Directory string
	// Path is the URL path used for tag link creation. When empty it is
	// inherited from the enclosing group.
	Path string
	// File is the resource file name relative to Directory.
	File string
	// Compressed is an optional compressed variant of File, preferred in
	// production mode.
	Compressed string
	// Include controls participation in resolution. Nil means included.
	Include Include
	// Unique renders the resource URL with a content-derived unique key.
	// It has no effect when URL is given.
	Unique bool
	// UniquePrefix overrides DefaultUniquePrefix.
	UniquePrefix string
	// Algorithm overrides DefaultHashAlgorithm.
	Algorithm HashAlgorithm
	// Group, when set, attaches the new resource to the given group.
	Group *Group
	// URL declares an external resource. Mutually exclusive with file
	// based URL composition.
	URL string

	// Crossorigin sets the CORS request mode of the tag.
	Crossorigin string
	// Referrerpolicy selects the referrer information sent when fetching.
	Referrerpolicy string
	// Type sets the media type attribute of the tag.
	Type string
	// Attrs holds additional attributes rendered on the tag.
	Attrs map[string]string

	// Async, Defer and NoModule apply to script resources only.
	Async    string
	Defer    string
	NoModule string
	// Integrity is a precomputed subresource integrity value for script
	// resources. IntegrityAuto derives it from the file content instead.
	Integrity     string
	IntegrityAuto bool

	// Hreflang, Media, Rel, Sizes and Title apply to link and style
	// resources only.
	Hreflang string
	Media    string
	Rel      string
	Sizes    string
	Title    string
}

// Resource is a leaf declaration of one renderable asset. It implements
// [Node] and carries the dependency names inspected by the resolver.
//
// A Resource is not safe for concurrent mutation; see the resolver
// package for the read/write contract.
type Resource struct {
	base
	kind    Kind
	depends []string

	file         string
	compressed   string
	unique       bool
	uniquePrefix string
	algorithm    HashAlgorithm
	url          string

	crossorigin    string
	referrerpolicy string
	mediaType      string
	attrs          map[string]string

	async    string
	deferred string
	nomodule string

	integrity     string
	integrityAuto bool
	integrityMemo string

	hashMemo string

	hreflang string
	media    string
	rel      string
	sizes    string
	title    string
}

func newResource(kind Kind, opts Options) (*Resource, error) {
	if opts.File == "" && opts.URL == "" {
		return nil, ErrNoSource
	}
	r := &Resource{
		kind:           kind,
		depends:        opts.Depends,
		file:           opts.File,
		compressed:     opts.Compressed,
		unique:         opts.Unique,
		uniquePrefix:   opts.UniquePrefix,
		algorithm:      opts.Algorithm,
		url:            opts.URL,
		crossorigin:    opts.Crossorigin,
		referrerpolicy: opts.Referrerpolicy,
		mediaType:      opts.Type,
		attrs:          opts.Attrs,
	}
	r.init(opts.Name, opts.Directory, opts.Path, opts.Include)
	if r.uniquePrefix == "" {
		r.uniquePrefix = DefaultUniquePrefix
	}
	if r.algorithm == "" {
		r.algorithm = DefaultHashAlgorithm
	}
	if opts.Group != nil {
		if err := opts.Group.Add(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NewScript creates a Javascript resource rendering as a <script> tag.
// Returns ErrNoSource if neither File nor URL is given, and
// ErrRemoteIntegrity if IntegrityAuto is combined with an external URL.
func NewScript(opts Options) (*Resource, error) {
	if opts.IntegrityAuto && opts.URL != "" {
		return nil, ErrRemoteIntegrity
	}
	r, err := newResource(KindScript, opts)
	if err != nil {
		return nil, err
	}
	r.async = opts.Async
	r.deferred = opts.Defer
	r.nomodule = opts.NoModule
	r.integrity = opts.Integrity
	r.integrityAuto = opts.IntegrityAuto
	return r, nil
}

// NewLink creates a generic link resource rendering as a <link> tag.
func NewLink(opts Options) (*Resource, error) {
	return newLinkResource(KindLink, opts)
}

// NewStyle creates a stylesheet resource rendering as a <link> tag with
// rel="stylesheet", media="all" and type="text/css" defaults.
func NewStyle(opts Options) (*Resource, error) {
	if opts.Media == "" {
		opts.Media = "all"
	}
	if opts.Rel == "" {
		opts.Rel = "stylesheet"
	}
	opts.Type = "text/css"
	opts.Sizes = ""
	return newLinkResource(KindStyle, opts)
}

func newLinkResource(kind Kind, opts Options) (*Resource, error) {
	r, err := newResource(kind, opts)
	if err != nil {
		return nil, err
	}
	r.hreflang = opts.Hreflang
	r.media = opts.Media
	r.rel = opts.Rel
	r.sizes = opts.Sizes
	r.title = opts.Title
	return r, nil
}

// Kind returns the resource's tag family.
func (r *Resource) Kind() Kind { return r.kind }

// Depends returns the names of the resources this one depends on. The
// returned slice is the resource's own; treat it as read-only.
func (r *Resource) Depends() []string { return r.depends }

// SetDepends replaces the dependency names.
func (r *Resource) SetDepends(depends ...string) { r.depends = depends }

// URLOnly reports whether the resource is declared via an external URL.
func (r *Resource) URLOnly() bool { return r.url != "" }

// Remote returns the external URL the resource was declared with, or
// the empty string for file-backed resources.
func (r *Resource) Remote() string { return r.url }

// Compressed returns the declared compressed file name, or the empty
// string when no compressed variant exists.
func (r *Resource) Compressed() string { return r.compressed }

// FileName returns the file served in the current operation mode: the
// compressed variant in production when one is declared, the plain file
// otherwise.
func (r *Resource) FileName() string {
	if !Config.Development() && r.compressed != "" {
		return r.compressed
	}
	return r.file
}

// FilePath returns the absolute path of the file served in the current
// operation mode. Returns ErrNoDirectory when no directory is set on the
// resource or inherited from an ancestor group.
func (r *Resource) FilePath() (string, error) {
	dir := r.Directory()
	if dir == "" {
		return "", fmt.Errorf("%w: %q", ErrNoDirectory, r.name)
	}
	return filepath.Join(dir, r.FileName()), nil
}

// FileData returns the content of the file served in the current
// operation mode.
func (r *Resource) FileData() ([]byte, error) {
	path, err := r.FilePath()
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// FileHash returns the base64 encoded digest of the resource file
// content. The value is memoized in production mode and recomputed on
// every read in development mode.
func (r *Resource) FileHash() (string, error) {
	if !Config.Development() && r.hashMemo != "" {
		return r.hashMemo, nil
	}
	h, err := r.algorithm.hasher()
	if err != nil {
		return "", err
	}
	data, err := r.FileData()
	if err != nil {
		return "", err
	}
	h.Write(data)
	digest := base64.StdEncoding.EncodeToString(h.Sum(nil))
	r.hashMemo = digest
	return digest, nil
}

// UniqueKey returns the unique URL segment for the resource, derived as
// a UUIDv5 of the file hash under a fixed namespace.
func (r *Resource) UniqueKey() (string, error) {
	digest, err := r.FileHash()
	if err != nil {
		return "", err
	}
	return r.uniquePrefix + uuid.NewSHA1(uniqueNamespace, []byte(digest)).String(), nil
}

// Integrity returns the subresource integrity value of a script
// resource: the explicitly configured value, or "<algorithm>-<hash>"
// derived from the file content when automatic computation was
// requested. Returns "" when no integrity was configured. Like FileHash,
// the derived value is memoized in production mode only.
func (r *Resource) Integrity() (string, error) {
	if !r.integrityAuto {
		return r.integrity, nil
	}
	if !Config.Development() && r.integrityMemo != "" {
		return r.integrityMemo, nil
	}
	digest, err := r.FileHash()
	if err != nil {
		return "", err
	}
	r.integrityMemo = fmt.Sprintf("%s-%s", r.algorithm, digest)
	return r.integrityMemo, nil
}

// URL composes the resource URL below baseURL. External resources return
// their declared URL unchanged; file resources join the base URL, the
// inherited path, the unique key when enabled, and the mode-dependent
// file name.
func (r *Resource) URL(baseURL string) (string, error) {
	if r.url != "" {
		return r.url, nil
	}
	parts := []string{strings.Trim(baseURL, "/")}
	if path := r.Path(); path != "" {
		parts = append(parts, strings.Trim(path, "/"))
	}
	if r.unique {
		key, err := r.UniqueKey()
		if err != nil {
			return "", err
		}
		parts = append(parts, key)
	}
	parts = append(parts, r.FileName())
	return strings.Join(parts, "/"), nil
}

// Render returns the resource's HTML tag for the given base URL.
func (r *Resource) Render(baseURL string) (string, error) {
	href, err := r.URL(baseURL)
	if err != nil {
		return "", err
	}
	attrs := map[string]string{
		"crossorigin":    r.crossorigin,
		"referrerpolicy": r.referrerpolicy,
		"type":           r.mediaType,
	}
	switch r.kind {
	case KindScript:
		integrity, err := r.Integrity()
		if err != nil {
			return "", err
		}
		attrs["src"] = href
		attrs["async"] = r.async
		attrs["defer"] = r.deferred
		attrs["nomodule"] = r.nomodule
		attrs["integrity"] = integrity
	default:
		attrs["href"] = href
		attrs["hreflang"] = r.hreflang
		attrs["media"] = r.media
		attrs["rel"] = r.rel
		attrs["sizes"] = r.sizes
		attrs["title"] = r.title
	}
	for name, val := range r.attrs {
		attrs[name] = val
	}
	if r.kind == KindScript {
		return renderTag("script", true, attrs), nil
	}
	return renderTag("link", false, attrs), nil
}

// Detach removes the resource from its parent group, clearing the
// back-reference. Returns ErrNotMember when the resource has no parent.
func (r *Resource) Detach() error { return detach(r) }

// Copy returns a deep copy of the resource. The copy is detached: it
// has no parent group even when the original is a group member.
func (r *Resource) Copy() *Resource {
	c := *r
	c.base = r.copyBase()
	c.depends = append([]string(nil), r.depends...)
	if r.attrs != nil {
		c.attrs = make(map[string]string, len(r.attrs))
		for k, v := range r.attrs {
			c.attrs[k] = v
		}
	}
	return &c
}

func (r *Resource) String() string {
	return fmt.Sprintf("<%s resource %q depends=%v>", r.kind, r.name, r.depends)
}

// renderTag formats an HTML tag with the given attributes. Attributes
// with empty values are skipped and the rest are rendered in sorted
// order for deterministic output.
func renderTag(tag string, closing bool, attrs map[string]string) string {
	pairs := make([]string, 0, len(attrs))
	for name, val := range attrs {
		if val == "" {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s=%q", name, val))
	}
	sort.Strings(pairs)
	rendered := strings.Join(pairs, " ")
	if !closing {
		return fmt.Sprintf("<%s %s />", tag, rendered)
	}
	return fmt.Sprintf("<%s %s></%s>", tag, rendered, tag)
}
