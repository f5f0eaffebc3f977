// Package saves implements save-file backup, transfer, and restore for the
// managed games. Every destructive operation copies the files it is about to
// overwrite into the game's backup directory first.
package saves

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"coopman/internal/model"
)

// TimestampLayout names backup files: <original>_<timestamp>.
const TimestampLayout = "2006-01-02_15-04-05"

// Transfer directions.
const (
	DirectionBaseToCoop = "base_to_coop"
	DirectionCoopToBase = "coop_to_base"
)

// Restore destinations.
const (
	DestBase = "base"
	DestCoop = "coop"
)

var (
	ErrNoSaveDir        = errors.New("save directory not found")
	ErrNoSaveFiles      = errors.New("no save files found")
	ErrNoBackupFiles    = errors.New("no backup files found for timestamp")
	ErrInvalidDirection = errors.New("invalid transfer direction")
	ErrInvalidDest      = errors.New("invalid restore destination")
)

var backupTimestampRe = regexp.MustCompile(`(\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2})$`)

// Manager performs save operations. Now is swappable for tests and defaults
// to time.Now.
type Manager struct {
	Now func() time.Time
}

func (m *Manager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// Overview is everything the saves view needs for one game.
type Overview struct {
	SaveDir   string               `json:"save_dir"`
	BackupDir string               `json:"backup_dir"`
	BaseExt   string               `json:"base_ext"`
	CoopExt   string               `json:"coop_ext"`
	BaseFiles []model.SaveFileInfo `json:"base_files"`
	CoopFiles []model.SaveFileInfo `json:"coop_files"`
	Backups   []model.BackupSet    `json:"backups"`
}

// List returns current save files and known backup sets for a game.
func (m *Manager) List(g model.Game) (*Overview, error) {
	if err := checkSaveDir(g); err != nil {
		return nil, err
	}
	backupDir, err := ensureBackupDir(g)
	if err != nil {
		return nil, err
	}

	base, err := describeFiles(listSaveFiles(g.SaveDir, g.SavePrefix, g.BaseExt))
	if err != nil {
		return nil, err
	}
	coop, err := describeFiles(listSaveFiles(g.SaveDir, g.SavePrefix, g.CoopExt))
	if err != nil {
		return nil, err
	}

	sets, err := m.backupSets(backupDir, g)
	if err != nil {
		return nil, err
	}

	return &Overview{
		SaveDir:   g.SaveDir,
		BackupDir: backupDir,
		BaseExt:   g.BaseExt,
		CoopExt:   g.CoopExt,
		BaseFiles: base,
		CoopFiles: coop,
		Backups:   sets,
	}, nil
}

// Backup copies every save file (base and co-op) into the backup directory
// with a shared timestamp suffix. Returns the timestamp and file count.
func (m *Manager) Backup(g model.Game) (string, int, error) {
	if err := checkSaveDir(g); err != nil {
		return "", 0, err
	}
	backupDir, err := ensureBackupDir(g)
	if err != nil {
		return "", 0, err
	}

	ts := m.now().Format(TimestampLayout)
	count := 0
	for _, ext := range []string{g.BaseExt, g.CoopExt} {
		for _, f := range listSaveFiles(g.SaveDir, g.SavePrefix, ext) {
			if err := copyFile(f, backupName(backupDir, f, ts)); err != nil {
				return "", count, err
			}
			count++
		}
	}
	if count == 0 {
		return "", 0, ErrNoSaveFiles
	}
	return ts, count, nil
}

// TransferResult reports what a transfer did.
type TransferResult struct {
	Timestamp   string `json:"backup_timestamp"`
	BackedUp    int    `json:"backed_up"`
	Transferred int    `json:"transferred"`
}

// Transfer copies saves between the base game and the co-op mod by swapping
// the extension segment of each filename. Destination files are backed up
// before being overwritten.
func (m *Manager) Transfer(g model.Game, direction string) (*TransferResult, error) {
	var srcExt, dstExt string
	switch direction {
	case DirectionBaseToCoop:
		srcExt, dstExt = g.BaseExt, g.CoopExt
	case DirectionCoopToBase:
		srcExt, dstExt = g.CoopExt, g.BaseExt
	default:
		return nil, ErrInvalidDirection
	}
	if err := checkSaveDir(g); err != nil {
		return nil, err
	}
	backupDir, err := ensureBackupDir(g)
	if err != nil {
		return nil, err
	}

	ts := m.now().Format(TimestampLayout)
	res := &TransferResult{Timestamp: ts}

	for _, f := range listSaveFiles(g.SaveDir, g.SavePrefix, dstExt) {
		if err := copyFile(f, backupName(backupDir, f, ts)); err != nil {
			return nil, err
		}
		res.BackedUp++
	}

	for _, src := range listSaveFiles(g.SaveDir, g.SavePrefix, srcExt) {
		name := filepath.Base(src)
		dstName := strings.Replace(name, g.SavePrefix+srcExt, g.SavePrefix+dstExt, 1)
		if err := copyFile(src, filepath.Join(g.SaveDir, dstName)); err != nil {
			return nil, err
		}
		res.Transferred++
	}
	if res.Transferred == 0 {
		return nil, ErrNoSaveFiles
	}
	return res, nil
}

// Restore copies a backup set back into the save directory, renaming each
// file onto the requested destination extension. Current destination files
// are backed up first.
func (m *Manager) Restore(g model.Game, timestamp, dest string) (int, error) {
	var dstExt string
	switch dest {
	case DestBase:
		dstExt = g.BaseExt
	case DestCoop:
		dstExt = g.CoopExt
	default:
		return 0, ErrInvalidDest
	}
	if err := checkSaveDir(g); err != nil {
		return 0, err
	}
	backupDir, err := ensureBackupDir(g)
	if err != nil {
		return 0, err
	}

	// Safety net before overwriting.
	nowTS := m.now().Format(TimestampLayout)
	for _, f := range listSaveFiles(g.SaveDir, g.SavePrefix, dstExt) {
		if err := copyFile(f, backupName(backupDir, f, nowTS)); err != nil {
			return 0, err
		}
	}

	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return 0, errors.Wrap(err, "read backup dir")
	}

	restored := 0
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, timestamp) || !strings.HasPrefix(name, g.SavePrefix) {
			continue
		}
		// Strip the _<timestamp> suffix to recover the original filename.
		original := strings.TrimSuffix(name, "_"+timestamp)
		if original == name {
			continue
		}

		var srcExt string
		switch {
		case strings.Contains(original, g.BaseExt):
			srcExt = g.BaseExt
		case strings.Contains(original, g.CoopExt):
			srcExt = g.CoopExt
		default:
			continue
		}

		destName := strings.Replace(original, g.SavePrefix+srcExt, g.SavePrefix+dstExt, 1)
		if err := copyFile(filepath.Join(backupDir, name), filepath.Join(g.SaveDir, destName)); err != nil {
			return restored, err
		}
		restored++
	}
	if restored == 0 {
		return 0, ErrNoBackupFiles
	}
	return restored, nil
}

// DeleteBackup removes every file of one backup set.
func (m *Manager) DeleteBackup(g model.Game, timestamp string) (int, error) {
	if err := checkSaveDir(g); err != nil {
		return 0, err
	}
	backupDir, err := ensureBackupDir(g)
	if err != nil {
		return 0, err
	}

	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return 0, errors.Wrap(err, "read backup dir")
	}

	deleted := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), timestamp) {
			continue
		}
		if err := os.Remove(filepath.Join(backupDir, e.Name())); err != nil {
			return deleted, errors.Wrap(err, "delete backup file")
		}
		deleted++
	}
	if deleted == 0 {
		return 0, ErrNoBackupFiles
	}
	return deleted, nil
}

// backupSets groups backup files by timestamp suffix, newest first.
func (m *Manager) backupSets(backupDir string, g model.Game) ([]model.BackupSet, error) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return nil, errors.Wrap(err, "read backup dir")
	}

	type counts struct{ base, coop int }
	byTS := make(map[string]*counts)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		sm := backupTimestampRe.FindStringSubmatch(e.Name())
		if sm == nil || !strings.HasPrefix(e.Name(), g.SavePrefix) {
			continue
		}
		c, ok := byTS[sm[1]]
		if !ok {
			c = &counts{}
			byTS[sm[1]] = c
		}
		if strings.Contains(e.Name(), g.BaseExt) {
			c.base++
		}
		if strings.Contains(e.Name(), g.CoopExt) {
			c.coop++
		}
	}

	stamps := make([]string, 0, len(byTS))
	for ts := range byTS {
		stamps = append(stamps, ts)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(stamps)))

	sets := make([]model.BackupSet, 0, len(stamps))
	for _, ts := range stamps {
		sets = append(sets, model.BackupSet{
			Timestamp: ts,
			BaseCount: byTS[ts].base,
			CoopCount: byTS[ts].coop,
		})
	}
	return sets, nil
}

func checkSaveDir(g model.Game) error {
	if g.SaveDir == "" {
		return ErrNoSaveDir
	}
	info, err := os.Stat(g.SaveDir)
	if err != nil || !info.IsDir() {
		return ErrNoSaveDir
	}
	return nil
}

// ensureBackupDir returns <save_dir>/<GAMEID>_Backups, creating it if needed.
func ensureBackupDir(g model.Game) (string, error) {
	dir := filepath.Join(g.SaveDir, strings.ToUpper(g.ID)+"_Backups")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "create backup dir")
	}
	return dir, nil
}

// listSaveFiles matches <prefix><ext>* so trailing variants like .sl2.bak
// are included.
func listSaveFiles(dir, prefix, ext string) []string {
	matches, err := filepath.Glob(filepath.Join(dir, prefix+ext+"*"))
	if err != nil {
		return nil
	}
	var files []string
	for _, p := range matches {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			files = append(files, p)
		}
	}
	return files
}

func describeFiles(paths []string) ([]model.SaveFileInfo, error) {
	infos := make([]model.SaveFileInfo, 0, len(paths))
	for _, p := range paths {
		st, err := os.Stat(p)
		if err != nil {
			continue
		}
		infos = append(infos, model.SaveFileInfo{
			Name:     filepath.Base(p),
			Size:     st.Size(),
			Modified: st.ModTime(),
		})
	}
	return infos, nil
}

func backupName(backupDir, srcPath, ts string) string {
	return filepath.Join(backupDir, filepath.Base(srcPath)+"_"+ts)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "open %s", src)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrapf(err, "create %s", dst)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return errors.Wrapf(err, "copy to %s", dst)
	}
	return nil
}
