package fileops

// command は OS ごとに組み立てた外部コマンドです
type command struct {
	name string
	args []string
}

func copyCommand(goos, src, dst string) (command, error) {
	switch goos {
	case "windows":
		return command{"xcopy", []string{src, dst, "/E", "/I", "/Y"}}, nil
	case "linux", "darwin", "freebsd", "openbsd", "netbsd":
		return command{"cp", []string{"-r", src, dst}}, nil
	}
	return command{}, ErrUnsupportedPlatform
}

func moveCommand(goos, src, dst string) (command, error) {
	switch goos {
	case "windows":
		return command{"cmd", []string{"/C", "move", src, dst}}, nil
	case "linux", "darwin", "freebsd", "openbsd", "netbsd":
		return command{"mv", []string{src, dst}}, nil
	}
	return command{}, ErrUnsupportedPlatform
}

func deleteCommand(goos, path string, isDir bool) (command, error) {
	switch goos {
	case "windows":
		if isDir {
			return command{"cmd", []string{"/C", "rmdir", "/S", "/Q", path}}, nil
		}
		return command{"cmd", []string{"/C", "del", "/Q", path}}, nil
	case "linux", "darwin", "freebsd", "openbsd", "netbsd":
		return command{"rm", []string{"-r", path}}, nil
	}
	return command{}, ErrUnsupportedPlatform
}

func viewCommand(goos, path string) (command, error) {
	switch goos {
	case "windows":
		return command{"notepad.exe", []string{path}}, nil
	case "linux", "darwin":
		return command{"cat", []string{path}}, nil
	}
	return command{}, ErrUnsupportedPlatform
}

func editCommand(goos, path string) (command, error) {
	switch goos {
	case "windows":
		return command{"notepad.exe", []string{path}}, nil
	case "darwin":
		return command{"open", []string{"-e", path}}, nil
	case "linux":
		return command{"xdg-open", []string{path}}, nil
	}
	return command{}, ErrUnsupportedPlatform
}

func shellCommand(goos, line string) command {
	if goos == "windows" {
		return command{"cmd", []string{"/C", line}}
	}
	return command{"sh", []string{"-c", line}}
}
