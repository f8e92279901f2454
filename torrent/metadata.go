package torrent

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Aestivial/TorrQ/bencode"
	"github.com/Aestivial/TorrQ/util"
)

// FileEntry is one file of a download.
type FileEntry struct {
	// Length of the file in bytes.
	length int64
	// A list of UTF-8 encoded strings corresponding to subdirectory names,
	// the last of which is the actual file name.
	path []string
}

func (fe FileEntry) Length() int64 {
	return fe.length
}

func (fe FileEntry) Path() []string {
	return fe.path
}

func (fe FileEntry) Name() string {
	return fe.path[len(fe.path)-1]
}

// Metadata is the validated content of a .torrent file.
type Metadata struct {
	// URL of trackers. Tiers of announce-list are flattened in order; the
	// single announce URL is the fallback when the list yields nothing.
	announceList []string
	// A UTF-8 encoded string which is the suggested name to save the
	// file (or directory) as.
	//
	// It is purely advisory.
	name string
	// Number of bytes in each piece the file is split into. For the
	// purposes of transfer, files are split into fixed-size pieces
	// which are all the same length except for possibly the last one
	// which may be truncated.
	pieceLength int64
	// SHA1 hash of the piece at the corresponding index, cut from the
	// pieces string in 20 byte steps.
	pieceHashes [][20]byte
	// Length of the download in bytes. For multi-file downloads this is
	// the sum over all files.
	totalLength int64
	// List of all the files in the download. Empty when the download
	// represents a single file.
	files     []FileEntry
	multiFile bool
	// SHA-1 over the canonical bencode encoding of the info dictionary.
	infoHash [20]byte
}

func (m Metadata) Name() string {
	return m.name
}

func (m Metadata) AnnounceList() []string {
	return m.announceList
}

func (m Metadata) PieceLength() int64 {
	return m.pieceLength
}

func (m Metadata) PieceCount() int {
	return len(m.pieceHashes)
}

func (m Metadata) PieceHashes() [][20]byte {
	return m.pieceHashes
}

func (m Metadata) TotalLength() int64 {
	return m.totalLength
}

func (m Metadata) MultiFile() bool {
	return m.multiFile
}

// Files lists the files of the download. A single-file download is reported
// as one entry whose path is just the advisory name.
func (m Metadata) Files() []FileEntry {
	if !m.multiFile {
		return []FileEntry{{length: m.totalLength, path: []string{m.name}}}
	}

	files := make([]FileEntry, len(m.files))
	copy(files, m.files)
	return files
}

func (m Metadata) InfoHash() [20]byte {
	return m.infoHash
}

func (m Metadata) InfoHashHex() string {
	return util.HexDigest(m.infoHash)
}

// Parse decodes data as a .torrent file. Serialization errors come back
// unchanged from the bencode layer; schema violations come back as a
// *SchemaError naming the offending field.
func Parse(data []byte) (*Metadata, error) {
	root, err := bencode.Decode(data)
	if err != nil {
		return nil, err
	}
	return FromDecoded(root)
}

// FromDecoded validates an already decoded bencode value as torrent
// metadata. The info hash is the SHA-1 of the canonical re-encoding of the
// info dictionary, so it is identical for every serialization of the same
// metadata.
func FromDecoded(root bencode.Value) (*Metadata, error) {
	if root.Kind() != bencode.KindDict {
		return nil, invalidField("root", "not a dictionary")
	}

	// Get info
	infoValue, err := lookupField(root, "info", "info")
	if err != nil {
		return nil, err
	}
	info, err := asDict(infoValue, "info")
	if err != nil {
		return nil, err
	}

	// Get name
	name, err := lookupText(info, "name", "info.name")
	if err != nil {
		return nil, err
	}

	// Get length or files
	lengthValue, okL := info.Lookup("length")
	filesValue, okF := info.Lookup("files")
	if okL == okF {
		return nil, invalidField("info", "there can only be a key length or a key files, not both or neither")
	}

	// Get piece length
	pieceLength, err := lookupInt(info, "piece length", "info.piece length")
	if err != nil {
		return nil, err
	}
	if pieceLength <= 0 {
		return nil, invalidField("info.piece length", "must be positive")
	}

	// Get pieces
	pieces, err := lookupString(info, "pieces", "info.pieces")
	if err != nil {
		return nil, err
	}
	if len(pieces)%20 != 0 {
		return nil, invalidField("info.pieces", "length is not a multiple of 20")
	}
	pieceHashes := make([][20]byte, 0, len(pieces)/20)
	for i := 0; i < len(pieces); i += 20 {
		var h [20]byte
		copy(h[:], pieces[i:i+20])
		pieceHashes = append(pieceHashes, h)
	}

	var totalLength int64
	var files []FileEntry
	if okL {
		length, err := asInt(lengthValue, "info.length")
		if err != nil {
			return nil, err
		}
		if length < 0 {
			return nil, invalidField("info.length", "must not be negative")
		}
		totalLength = length
	} else {
		files, err = fileEntries(filesValue)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			totalLength += f.length
		}
	}

	rawInfo, err := bencode.Encode(info)
	if err != nil {
		return nil, err
	}

	// Get trackers
	announceList, err := announceURLs(root)
	if err != nil {
		return nil, err
	}

	return &Metadata{
		announceList: announceList,
		name:         name,
		pieceLength:  pieceLength,
		pieceHashes:  pieceHashes,
		totalLength:  totalLength,
		files:        files,
		multiFile:    okF,
		infoHash:     util.CalcInfoHash(rawInfo),
	}, nil
}

// announceURLs flattens announce-list tiers in order, skipping entries that
// are empty after trimming. When the list is absent or yields nothing the
// single announce URL is used instead. A torrent with no tracker at all is
// accepted.
func announceURLs(root bencode.Value) ([]string, error) {
	urls := make([]string, 0)

	if tiers, ok := root.Lookup("announce-list"); ok {
		tierItems, err := asList(tiers, "announce-list")
		if err != nil {
			return nil, err
		}
		for i, tier := range tierItems {
			entries, err := asList(tier, fmt.Sprintf("announce-list[%d]", i))
			if err != nil {
				return nil, err
			}
			for _, entry := range entries {
				u, err := asText(entry, fmt.Sprintf("announce-list[%d]", i))
				if err != nil {
					return nil, err
				}
				u = strings.TrimSpace(u)
				if u != "" {
					urls = append(urls, u)
				}
			}
		}
	}

	if len(urls) == 0 {
		if announce, ok := root.Lookup("announce"); ok {
			u, err := asText(announce, "announce")
			if err != nil {
				return nil, err
			}
			u = strings.TrimSpace(u)
			if u != "" {
				urls = append(urls, u)
			}
		}
	}

	return urls, nil
}

func fileEntries(v bencode.Value) ([]FileEntry, error) {
	items, err := asList(v, "info.files")
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, invalidField("info.files", "files cannot be empty")
	}

	files := make([]FileEntry, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("info.files[%d]", i)
		entry, err := asDict(item, path)
		if err != nil {
			return nil, err
		}

		length, err := lookupInt(entry, "length", path+".length")
		if err != nil {
			return nil, err
		}
		if length < 0 {
			return nil, invalidField(path+".length", "must not be negative")
		}

		componentsValue, err := lookupField(entry, "path", path+".path")
		if err != nil {
			return nil, err
		}
		componentItems, err := asList(componentsValue, path+".path")
		if err != nil {
			return nil, err
		}
		if len(componentItems) == 0 {
			return nil, invalidField(path+".path", "path cannot be empty")
		}
		components := make([]string, 0, len(componentItems))
		for _, c := range componentItems {
			s, err := asText(c, path+".path")
			if err != nil {
				return nil, err
			}
			if s == "" {
				return nil, invalidField(path+".path", "path component cannot be empty")
			}
			components = append(components, s)
		}

		files = append(files, FileEntry{length: length, path: components})
	}

	return files, nil
}

func lookupField(dict bencode.Value, key, path string) (bencode.Value, error) {
	v, ok := dict.Lookup(key)
	if !ok {
		return bencode.Value{}, missingField(path)
	}
	return v, nil
}

func lookupInt(dict bencode.Value, key, path string) (int64, error) {
	v, err := lookupField(dict, key, path)
	if err != nil {
		return 0, err
	}
	return asInt(v, path)
}

func lookupString(dict bencode.Value, key, path string) ([]byte, error) {
	v, err := lookupField(dict, key, path)
	if err != nil {
		return nil, err
	}
	return asString(v, path)
}

func lookupText(dict bencode.Value, key, path string) (string, error) {
	v, err := lookupField(dict, key, path)
	if err != nil {
		return "", err
	}
	return asText(v, path)
}

func asInt(v bencode.Value, path string) (int64, error) {
	n, ok := v.Int64()
	if !ok {
		return 0, invalidField(path, fmt.Sprintf("is not an integer, it is a %v", v.Kind()))
	}
	return n, nil
}

func asString(v bencode.Value, path string) ([]byte, error) {
	b, ok := v.Bytes()
	if !ok {
		return nil, invalidField(path, fmt.Sprintf("is not a string, it is a %v", v.Kind()))
	}
	return b, nil
}

func asText(v bencode.Value, path string) (string, error) {
	b, err := asString(v, path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", badEncoding(path)
	}
	return string(b), nil
}

func asList(v bencode.Value, path string) ([]bencode.Value, error) {
	items, ok := v.Items()
	if !ok {
		return nil, invalidField(path, fmt.Sprintf("is not a list, it is a %v", v.Kind()))
	}
	return items, nil
}

func asDict(v bencode.Value, path string) (bencode.Value, error) {
	if v.Kind() != bencode.KindDict {
		return bencode.Value{}, invalidField(path, fmt.Sprintf("is not a dictionary, it is a %v", v.Kind()))
	}
	return v, nil
}
