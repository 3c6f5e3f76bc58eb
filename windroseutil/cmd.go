/*
Copyright © 2018 the windrose authors.
This file is part of windrose.

windrose is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

windrose is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with windrose.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package windroseutil holds the command-line interface to windrose.
package windroseutil

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/ctessum/gobra"
	"github.com/lnashier/viper"
	"github.com/skratchdot/open-golang/open"
	"github.com/spatialmodel/windrose"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gonum.org/v1/plot/vg"
)

// Cfg holds configuration information and the commands that use it.
type Cfg struct {
	*viper.Viper

	// Root is the main command.
	Root *cobra.Command

	versionCmd, configCmd, guiCmd *cobra.Command

	options []option
}

type option struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

// display opens a file in the system viewer.
var display = open.Run

// InitializeConfig creates the commands and binds their flags to a new
// configuration.
func InitializeConfig() *Cfg {
	cfg := &Cfg{Viper: viper.New()}

	cfg.Root = &cobra.Command{
		Use:   "windrose",
		Short: "Draw monthly wind roses.",
		Long: `windrose draws a wind rose (a polar histogram of wind speed by
direction) for each month of a year, arranged in a 3 by 4 grid on one figure.

The input is a CSV or Excel (.xlsx) file with a header row naming at least the
columns 'Timestamp', 'direction' (degrees) and 'speed'. It can be a local path,
an http(s):// URL, or a gs://, s3:// or file:// blob.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'WINDROSE_var' where 'var' is
the name of the variable to be set. Paths are allowed to contain environment
variables. Refer to https://github.com/spf13/viper for additional configuration
information.`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		PersistentPreRunE: func(*cobra.Command, []string) error { return cfg.setConfig() },
		RunE: func(cmd *cobra.Command, args []string) error {
			return cfg.run(cmd)
		},
	}

	cfg.versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Long:  "version prints the version number of this version of windrose.",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("windrose v%s\n", windrose.Version)
		},
		DisableAutoGenTag: true,
	}

	cfg.configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the configuration",
		Long: `config prints the configuration that would be used, after combining
defaults, the configuration file, environment variables and flags, in TOML
format. The output can be saved and passed back with --config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cfg.writeConfig(cmd.OutOrStdout())
		},
		DisableAutoGenTag: true,
	}

	cfg.guiCmd = &cobra.Command{
		Use:   "gui",
		Short: "Start the graphical interface",
		Long:  "gui starts a web server with a form for setting options and running windrose.",
		Run: func(cmd *cobra.Command, args []string) {
			cfg.StartWebServer()
		},
		DisableAutoGenTag: true,
	}

	cfg.Root.AddCommand(cfg.versionCmd, cfg.configCmd, cfg.guiCmd)

	flags := []*pflag.FlagSet{cfg.Root.PersistentFlags()}
	cfg.options = []option{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   flags,
		},
		{
			name: "filename",
			usage: `
              filename is the path to the input data. It can be a local CSV
              or .xlsx file, an http(s):// URL or a gs://, s3:// or file://
              blob, and can include environment variables. The default
              is the sample data set bundled with windrose, relative to
              the repository root.`,
			shorthand:  "f",
			defaultVal: "testdata/sample_wind_poitiers.csv",
			flagsets:   flags,
		},
		{
			name: "year",
			usage: `
              year is the calendar year to draw.`,
			shorthand:  "y",
			defaultVal: 2014,
			flagsets:   flags,
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path where the figure should be written. The
              extension selects the format: .png, .jpg, .tif, .svg or .pdf.
              If it is left blank, the figure is written to a temporary
              directory. It can include environment variables.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   flags,
		},
		{
			name: "show",
			usage: `
              show specifies whether to open the figure in the system
              viewer after it is written.`,
			defaultVal: true,
			flagsets:   flags,
		},
		{
			name: "nsector",
			usage: `
              nsector is the number of direction sectors.`,
			defaultVal: windrose.DefaultNsector,
			flagsets:   flags,
		},
		{
			name: "Bins.Start",
			usage: `
              Bins.Start is the lower edge of the first speed bin. Slower
              observations are counted as calm and not drawn.`,
			defaultVal: 0.01,
			flagsets:   flags,
		},
		{
			name: "Bins.Stop",
			usage: `
              Bins.Stop is the value that bin lower edges stay below.`,
			defaultVal: 8.0,
			flagsets:   flags,
		},
		{
			name: "Bins.Step",
			usage: `
              Bins.Step is the width of each speed bin. The last bin has
              no upper limit.`,
			defaultVal: 1.0,
			flagsets:   flags,
		},
		{
			name: "filter",
			usage: `
              filter is an optional expression selecting the observations
              to include, for example "speed >= 0.5 && hour >= 6". It can
              refer to speed, direction, year, month, day and hour.`,
			defaultVal: "",
			flagsets:   flags,
		},
		{
			name: "FigureWidth",
			usage: `
              FigureWidth is the width of the figure in inches.`,
			defaultVal: float64(windrose.DefaultWidth / vg.Inch),
			flagsets:   flags,
		},
		{
			name: "FigureHeight",
			usage: `
              FigureHeight is the height of the figure in inches.`,
			defaultVal: float64(windrose.DefaultHeight / vg.Inch),
			flagsets:   flags,
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel is the minimum level of log messages to print:
              debug, info, warning or error.`,
			defaultVal: "info",
			flagsets:   flags,
		},
	}

	// Set the prefix for configuration environment variables.
	cfg.SetEnvPrefix("WINDROSE")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	for _, option := range cfg.options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
	return cfg
}

// setConfig finds and reads in the configuration file, if there is one.
func (cfg *Cfg) setConfig() error {
	if cfgpath := cfg.GetString("config"); cfgpath != "" {
		cfg.SetConfigFile(cfgpath)
		if err := cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("windrose: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// run draws the figure using the current configuration.
func (cfg *Cfg) run(cmd *cobra.Command) error {
	log, err := newLogger(cfg.GetString("LogLevel"), cmd.OutOrStderr())
	if err != nil {
		return err
	}
	year, err := checkYear(cfg.GetInt("year"))
	if err != nil {
		return err
	}
	nsector, err := checkNsector(cfg.GetInt("nsector"))
	if err != nil {
		return err
	}
	bins, err := checkBins(cfg.GetFloat64("Bins.Start"), cfg.GetFloat64("Bins.Stop"), cfg.GetFloat64("Bins.Step"))
	if err != nil {
		return err
	}
	filter, err := windrose.NewFilter(cfg.GetString("filter"))
	if err != nil {
		return err
	}
	width, height, err := checkFigureSize(cfg.GetFloat64("FigureWidth"), cfg.GetFloat64("FigureHeight"))
	if err != nil {
		return err
	}
	outputFile, err := checkOutputFile(cfg.GetString("OutputFile"), year)
	if err != nil {
		return err
	}
	input, err := maybeDownload(context.Background(), expandPath(cfg.GetString("filename")), log)
	if err != nil {
		return err
	}

	paths, err := Run(log, input, year, bins, nsector, filter, outputFile, width, height)
	if err != nil {
		return err
	}
	for _, p := range paths {
		log.WithField("file", p).Info("wrote figure")
		if cfg.GetBool("show") {
			if err := display(p); err != nil {
				return fmt.Errorf("windrose: displaying figure: %v", err)
			}
		}
	}
	return nil
}

// setConfigHandler loads the configuration file named by the "config"
// query parameter and responds with the resulting option values in JSON.
func (cfg *Cfg) setConfigHandler(w http.ResponseWriter, r *http.Request) {
	configFile := r.FormValue("config")
	if configFile == "" {
		http.Error(w, "windrose: missing config parameter", http.StatusBadRequest)
		return
	}
	cfg.Root.PersistentFlags().Set("config", configFile)
	if err := cfg.setConfig(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	config := make(map[string]interface{})
	for _, option := range cfg.options {
		config[option.name] = cfg.Get(option.name)
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(config); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// StartWebServer starts the web server.
func (cfg *Cfg) StartWebServer() {
	cfg.setConfig() // Ignore any errors for now.

	http.HandleFunc("/setConfig", cfg.setConfigHandler)

	for _, cmd := range []*cobra.Command{cfg.Root, cfg.versionCmd, cfg.configCmd} {
		cmd.SilenceUsage = true // We don't want the usage messages in the GUI.
	}

	const address = "localhost:7272"
	const tmpl = `
<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>windrose</title>
	<style>
		html, body {padding: 0; margin: 2% 0; font-family: sans-serif;}
		.container { max-width: 700px; margin: 0 auto; padding: 10px; }
		div[id^="gobra-"] blockquote { border-left: 3px solid #bbb; margin: .3em; color: #333; padding-left: 5px; font-size: 75%; }
		div[id^="gobra-"] code { font-weight: bold; }
		div[id^="gobra-"] input { font-family: monospace; margin-left: .2em; width: 50%; outline:none; }
		.red-border{ border: 1px solid #c35; }
		.green-border{ border: 1px solid #3c5; }
	</style>
</head>
<body>
<div class="container">
	<h1>windrose</h1>
	<p>Choose the input file and year below.</p>
	<div>
		{{.}}
	</div>
</div>

<script>
let allFlags = [...document.querySelectorAll('[data-name]')];
let configInput = allFlags.filter(x => x.dataset.name == "config")[0].children[0];
configInput.addEventListener("input", e => {
	fetch("http://` + address + `/setConfig?config="+configInput.value)
		.then( res => {
			if (res.status !== 200) {
				configInput.classList.remove("green-border");
				configInput.classList.add("red-border");
				return;
			}
			res.json().then( data => {
				configInput.classList.remove("red-border");
				for (let key in data)
					for (let f of allFlags)
						if (f.dataset.name == key) {
							let input = f.children[0];
							input.value = JSON.stringify(data[key]).replace(/^"+|"+$/g,'');
							input.classList.add("green-border");
						}
			})
		})
})
</script>
</body>
</html>`

	output := template.Must(template.New("").Parse(tmpl))
	server := gobra.Server{Root: cfg.Root, ServerAddress: address, AllowCORS: false, HTML: output}
	fmt.Println("If not opened automatically, please visit http://" + address)
	display("http://" + address)
	server.Start()
}
