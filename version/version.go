package version

// BuildVersion contains the version of the brightctl binary. Set during build.
var BuildVersion = "change-me"
