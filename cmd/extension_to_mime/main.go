// Command extension_to_mime prints the MIME types of the given file-name
// extensions as a Go []string literal.
//
//	$ extension_to_mime png html
//	[]string{"image/png", "text/html"}
//
// Extensions without a known type are left out. Settings come from the
// TOML file named by EXT2MIME_CONFIG and from EXT2MIME_* variables.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"git.uuxo.net/uuxo/extension-to-mime/internal/config"
	"git.uuxo.net/uuxo/extension-to-mime/internal/literal"
	"git.uuxo.net/uuxo/extension-to-mime/internal/logging"
	"git.uuxo.net/uuxo/extension-to-mime/internal/mimetable"
	"git.uuxo.net/uuxo/extension-to-mime/internal/resolver"
)

const usage = "Usage: extension_to_mime [extensions]"

var log = logrus.New()

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stdout, usage)
		return 1
	}

	config.SetLogger(log)
	mimetable.SetLogger(log)

	conf, err := config.Load(os.Getenv(config.EnvConfigFile))
	if err != nil {
		log.Errorf("Failed to load configuration: %v", err)
		return 1
	}
	logging.Setup(conf.Logging, log)
	if out, err := conf.TOML(); err == nil {
		log.Debugf("Effective configuration:\n%s", out)
	}

	table, err := mimetable.Load(mimetable.Options{
		TypesFiles: conf.Mime.TypesFiles,
		NoHost:     !conf.Mime.HostDB,
	})
	if err != nil {
		log.Errorf("Failed to load MIME table: %v", err)
		return 1
	}

	r := resolver.New(table, conf.Mime.Strict)
	fmt.Fprintln(stdout, literal.Format(r, args))
	return 0
}
