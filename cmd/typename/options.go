package main

// Options are the command line flags.
type Options struct {
	Config      string `short:"c" long:"config" description:"YAML resolver config"`
	Separator   string `short:"s" long:"separator" description:"nested type separator for canonical names" choice:"source" choice:"binary"`
	Suffix      string `short:"x" long:"suffix" description:"adapter name suffix"`
	Format      string `short:"f" long:"format" description:"output format" choice:"text" choice:"yaml" default:"text"`
	Output      string `short:"o" long:"output" description:"write the report to a file instead of stdout"`
	LogLevel    string `short:"l" long:"log-level" description:"log level" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info"`
	Dump        bool   `short:"d" long:"dump" description:"dump type descriptors to stderr"`
	WriteConfig string `short:"w" long:"write-config" description:"write the effective config to a YAML file"`
	Args        struct {
		Patterns []string `positional-arg-name:"package"`
	} `positional-args:"yes"`
}
