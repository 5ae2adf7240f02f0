package options

// Built-in build commands and their accepted options. External plugins
// register additional commands the same way, typically from an init
// function in their own package.

func init() {
	Register("build", Static([]Option{
		{Name: "build-base=", Short: "b"},
		{Name: "build-purelib="},
		{Name: "build-platlib="},
		{Name: "build-lib="},
		{Name: "build-scripts="},
		{Name: "build-temp=", Short: "t"},
		{Name: "plat-name=", Short: "p"},
		{Name: "compiler=", Short: "c"},
		{Name: "parallel=", Short: "j"},
		{Name: "debug", Short: "g"},
		{Name: "force", Short: "f"},
		{Name: "executable=", Short: "e"},
	}))

	Register("build_py", Static([]Option{
		{Name: "build-lib=", Short: "d"},
		{Name: "compile", Short: "c"},
		{Name: "no-compile"},
		{Name: "optimize=", Short: "O"},
		{Name: "force", Short: "f"},
	}))

	Register("build_ext", Static([]Option{
		{Name: "build-lib=", Short: "b"},
		{Name: "build-temp=", Short: "t"},
		{Name: "plat-name=", Short: "p"},
		{Name: "inplace", Short: "i"},
		{Name: "include-dirs=", Short: "I"},
		{Name: "define=", Short: "D"},
		{Name: "undef=", Short: "U"},
		{Name: "libraries=", Short: "l"},
		{Name: "library-dirs=", Short: "L"},
		{Name: "rpath=", Short: "R"},
		{Name: "link-objects=", Short: "O"},
		{Name: "debug", Short: "g"},
		{Name: "force", Short: "f"},
		{Name: "compiler=", Short: "c"},
		{Name: "parallel=", Short: "j"},
		{Name: "swig-cpp"},
		{Name: "swig-opts="},
		{Name: "swig="},
	}))

	Register("sdist", Static([]Option{
		{Name: "formats="},
		{Name: "keep-temp", Short: "k"},
		{Name: "dist-dir=", Short: "d"},
		{Name: "owner=", Short: "u"},
		{Name: "group=", Short: "g"},
	}))

	Register("bdist", Static([]Option{
		{Name: "bdist-base=", Short: "b"},
		{Name: "plat-name=", Short: "p"},
		{Name: "formats="},
		{Name: "dist-dir=", Short: "d"},
		{Name: "skip-build"},
		{Name: "owner=", Short: "u"},
		{Name: "group=", Short: "g"},
	}))

	Register("bdist_wheel", Static([]Option{
		{Name: "bdist-dir=", Short: "b"},
		{Name: "plat-name=", Short: "p"},
		{Name: "keep-temp", Short: "k"},
		{Name: "dist-dir=", Short: "d"},
		{Name: "skip-build"},
		{Name: "relative"},
		{Name: "owner=", Short: "u"},
		{Name: "group=", Short: "g"},
		{Name: "universal"},
		{Name: "compression="},
		{Name: "python-tag="},
		{Name: "build-number="},
		{Name: "py-limited-api="},
	}))

	Register("install", Static([]Option{
		{Name: "prefix="},
		{Name: "exec-prefix="},
		{Name: "home="},
		{Name: "user"},
		{Name: "install-base="},
		{Name: "install-platbase="},
		{Name: "root="},
		{Name: "install-purelib="},
		{Name: "install-platlib="},
		{Name: "install-lib="},
		{Name: "install-headers="},
		{Name: "install-scripts="},
		{Name: "install-data="},
		{Name: "compile", Short: "c"},
		{Name: "no-compile"},
		{Name: "optimize=", Short: "O"},
		{Name: "force", Short: "f"},
		{Name: "skip-build"},
		{Name: "record="},
	}))

	Register("egg_info", Static([]Option{
		{Name: "egg-base=", Short: "e"},
		{Name: "tag-date", Short: "d"},
		{Name: "tag-build=", Short: "b"},
		{Name: "no-date", Short: "D"},
	}))

	Register("editable_wheel", Static([]Option{
		{Name: "dist-dir=", Short: "d"},
		{Name: "dist-info-dir=", Short: "I"},
		{Name: "mode="},
	}))
}
