package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strconv"

	"FileScope/internal/domain/model"
)

// Inspector はディレクトリエントリからメタデータを取り出します。
// ユーザー名とグループ名の解決結果をキャッシュするため、並行利用はできません。
type Inspector struct {
	resolveNames bool
	users        map[uint32]string
	groups       map[uint32]string
}

// NewInspector は新しい Inspector を作成します。
// resolveNames が false の場合、所有者とグループは数値 ID のまま返します
func NewInspector(resolveNames bool) *Inspector {
	return &Inspector{
		resolveNames: resolveNames,
		users:        make(map[uint32]string),
		groups:       make(map[uint32]string),
	}
}

// Inspect は dir 内の entry のメタデータを読み取ります。
// follow が true の場合はシンボリックリンクの参照先を読みます。
// メタデータを全く読めない場合はエラーを返します
func (i *Inspector) Inspect(dir string, entry fs.DirEntry, follow bool) (model.EntryRecord, fs.FileInfo, error) {
	path := filepath.Join(dir, entry.Name())
	info, err := entryInfo(path, entry, follow)
	if err != nil {
		return model.EntryRecord{}, nil, err
	}
	return i.InspectInfo(path, info), info, nil
}

// entryInfo は entry の FileInfo を返します。follow が true の場合はリンク先を読み、
// 読めなければリンク自身の情報を返します
func entryInfo(path string, entry fs.DirEntry, follow bool) (fs.FileInfo, error) {
	if follow && entry.Type()&fs.ModeSymlink != 0 {
		if info, err := os.Stat(path); err == nil {
			return info, nil
		}
	}
	return entry.Info()
}

// InspectInfo は読み取り済みの FileInfo からレコードを作成します
func (i *Inspector) InspectInfo(path string, info fs.FileInfo) model.EntryRecord {
	rec := model.EntryRecord{
		Name:  info.Name(),
		Path:  path,
		IsDir: info.IsDir(),
		Size:  model.Int64(info.Size()),
	}
	if rec.Name == "" || rec.Name == "." {
		rec.Name = filepath.Base(path)
	}

	if mt := info.ModTime(); !mt.IsZero() {
		rec.Modified = model.Int64(mt.Unix())
	}

	if hasPOSIXMode {
		rec.Permissions = model.String(formatPermissions(info.Mode()))
	}

	if uid, gid, ok := ownership(info); ok {
		rec.Owner = model.String(i.userName(uid))
		rec.Group = model.String(i.groupName(gid))
	}

	return rec
}

// formatPermissions は所有者・グループ・その他の権限ビットを 3 桁の 8 進数で表します
func formatPermissions(mode fs.FileMode) string {
	return fmt.Sprintf("%03o", uint32(mode.Perm()))
}

func (i *Inspector) userName(uid uint32) string {
	if name, ok := i.users[uid]; ok {
		return name
	}
	id := strconv.FormatUint(uint64(uid), 10)
	name := id
	if i.resolveNames {
		if u, err := user.LookupId(id); err == nil && u.Username != "" {
			name = u.Username
		}
	}
	i.users[uid] = name
	return name
}

func (i *Inspector) groupName(gid uint32) string {
	if name, ok := i.groups[gid]; ok {
		return name
	}
	id := strconv.FormatUint(uint64(gid), 10)
	name := id
	if i.resolveNames {
		if g, err := user.LookupGroupId(id); err == nil && g.Name != "" {
			name = g.Name
		}
	}
	i.groups[gid] = name
	return name
}
