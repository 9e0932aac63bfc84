package file

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joyvuu-dave/archiver/v3"
	"github.com/pkg/errors"
)

const (
	InputExtension = ".json"

	StatInputFailureFormat       = "Could not access input path %s"
	ReadInputDirFailureFormat    = "Could not list input directory %s"
	ReadInputFileFailureFormat   = "Could not read input file %s"
	ReadArchiveFailureFormat     = "Could not read archive %s"
	ReadArchiveMemberErrorFormat = "Could not read %s from archive %s"
)

// Input is one batch file. Its content is read once, up front.
type Input struct {
	name    string
	content []byte
}

func NewInput(name string, content []byte) *Input {
	return &Input{name: name, content: content}
}

func (i *Input) Name() string {
	return i.name
}

func (i *Input) Content() io.Reader {
	return bytes.NewReader(i.content)
}

// ReadInputs loads every JSON batch under path, which is either a directory or an archive
// in any format archiver recognizes by extension. Inputs are returned sorted by name.
func ReadInputs(path string) ([]*Input, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, StatInputFailureFormat, path)
	}

	var inputs []*Input
	if info.IsDir() {
		inputs, err = readDir(path)
	} else {
		inputs, err = readArchive(path)
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(inputs, func(i, j int) bool { return inputs[i].name < inputs[j].name })
	return inputs, nil
}

func isInputFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), InputExtension) && !strings.HasPrefix(filepath.Base(name), ".")
}

func readDir(dir string) ([]*Input, error) {
	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, ReadInputDirFailureFormat, dir)
	}

	var inputs []*Input
	for _, entry := range entries {
		if !entry.Mode().IsRegular() || !isInputFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		content, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, ReadInputFileFailureFormat, path)
		}
		inputs = append(inputs, NewInput(path, content))
	}
	return inputs, nil
}

func readArchive(path string) ([]*Input, error) {
	var inputs []*Input
	err := archiver.Walk(path, func(f archiver.File) error {
		if f.IsDir() || !isInputFile(f.Name()) {
			return nil
		}
		content, err := ioutil.ReadAll(f)
		if err != nil {
			return errors.Wrapf(err, ReadArchiveMemberErrorFormat, f.Name(), path)
		}
		inputs = append(inputs, NewInput(f.Name(), content))
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, ReadArchiveFailureFormat, path)
	}
	return inputs, nil
}
