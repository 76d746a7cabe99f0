// Command countryctl is an interactive terminal explorer for the country
// kit: it authenticates against the user service, loads the country set and
// then runs a small command loop over search, region and population filters.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dmitrymomot/countrykit/pkg/auth"
	"github.com/dmitrymomot/countrykit/pkg/config"
	"github.com/dmitrymomot/countrykit/pkg/countries"
	"github.com/dmitrymomot/countrykit/pkg/explorer"
	"github.com/dmitrymomot/countrykit/pkg/filter"
	"github.com/dmitrymomot/countrykit/pkg/logger"
	"github.com/dmitrymomot/countrykit/pkg/session"
	"github.com/dmitrymomot/countrykit/pkg/userapi"
	"github.com/dmitrymomot/countrykit/pkg/validator"
)

type appConfig struct {
	LogLevel  slog.Level    `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat logger.Format `env:"LOG_FORMAT" envDefault:"text"`
}

func main() {
	searchFlag := flag.String("search", "", "initial search query")
	regionFlag := flag.String("region", "", "initial region")
	flag.Parse()

	if err := run(*searchFlag, *regionFlag); err != nil {
		fmt.Fprintln(os.Stderr, "countryctl:", err)
		os.Exit(1)
	}
}

func run(searchSeed, regionSeed string) error {
	ctx := context.Background()

	var appCfg appConfig
	var sessionCfg session.Config
	var countriesCfg countries.Config
	var userCfg userapi.Config
	if err := errors.Join(
		config.Load(&appCfg),
		config.Load(&sessionCfg),
		config.Load(&countriesCfg),
		config.Load(&userCfg),
	); err != nil {
		return err
	}

	log := logger.New(
		logger.WithLevel(appCfg.LogLevel),
		logger.WithFormat(appCfg.LogFormat),
		logger.WithOutput(os.Stderr),
		logger.WithComponent("countryctl"),
	)
	logger.SetAsDefault(log)

	store, err := openStore(ctx, sessionCfg)
	if err != nil {
		return err
	}
	sessions := session.NewFromConfig(sessionCfg,
		session.WithStore(store),
		session.WithLogger(log),
	)

	users := userapi.NewClientFromConfig(userCfg,
		userapi.WithHTTPClient(userapi.AuthenticatedHTTPClient(sessions)),
		userapi.WithLogger(log),
	)
	flow := auth.NewFlow(sessions, users, auth.WithLogger(log))

	in := bufio.NewScanner(os.Stdin)
	if flow.Bootstrap(ctx) != auth.RedirectHome {
		if err := signIn(ctx, flow, in); err != nil {
			return err
		}
	}
	fmt.Printf("signed in as %s\n\n", flow.CurrentUser().Email)

	data := countries.NewClientFromConfig(countriesCfg,
		countries.WithLogger(log),
	)
	runner := explorer.NewRunner(data,
		explorer.WithURLSink(printPermalink),
		explorer.WithRunnerLogger(log),
	)

	seed := url.Values{}
	if searchSeed != "" {
		seed.Set(explorer.ParamSearch, searchSeed)
	}
	if regionSeed != "" {
		seed.Set(explorer.ParamRegion, regionSeed)
	}
	if err := runner.Init(ctx, seed); err != nil {
		return err
	}
	render(runner.State())

	return loop(ctx, in, runner, data, flow)
}

// openStore picks the session backend: Redis when a URL is configured, the
// file store otherwise.
func openStore(ctx context.Context, cfg session.Config) (session.Store, error) {
	if cfg.RedisURL == "" {
		return session.NewFileStore(cfg.StorageDir()), nil
	}
	client, err := session.DialRedis(ctx, cfg.RedisURL, cfg.RedisRetryAttempts, cfg.RedisRetryInterval)
	if err != nil {
		return nil, err
	}
	return session.NewRedisStore(client, cfg.TTL), nil
}

// signIn runs the login/register prompt until the flow is authenticated or
// input runs out.
func signIn(ctx context.Context, flow *auth.Flow, in *bufio.Scanner) error {
	for {
		fmt.Print("[l]ogin or [r]egister? ")
		if !in.Scan() {
			return errors.New("no input")
		}

		var err error
		switch strings.TrimSpace(strings.ToLower(in.Text())) {
		case "l", "login":
			err = doLogin(ctx, flow, in)
		case "r", "register":
			err = doRegister(ctx, flow, in)
		default:
			continue
		}

		if err == nil {
			return nil
		}
		reportAuthError(err)
	}
}

func doLogin(ctx context.Context, flow *auth.Flow, in *bufio.Scanner) error {
	input := auth.LoginInput{
		Email:    prompt(in, "email"),
		Password: prompt(in, "password"),
	}
	_, err := flow.Login(ctx, input)
	return err
}

func doRegister(ctx context.Context, flow *auth.Flow, in *bufio.Scanner) error {
	input := auth.RegisterInput{
		Name:            prompt(in, "name"),
		Email:           prompt(in, "email"),
		Password:        prompt(in, "password"),
		PasswordConfirm: prompt(in, "confirm password"),
		ProfilePicture:  prompt(in, "profile picture URL"),
	}
	_, err := flow.Register(ctx, input)
	return err
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Printf("%s: ", label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func reportAuthError(err error) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		for _, ve := range verrs {
			fmt.Printf("  %s: %s\n", ve.Field, ve.Message)
		}
		return
	}
	if apiErr, ok := userapi.AsAPIError(err); ok {
		fmt.Printf("  %s\n", apiErr.Message)
		return
	}
	fmt.Printf("  %v\n", err)
}

const usage = `commands:
  search <text>   free-text search (empty text clears the query)
  region <name>   restrict to a region ("All" lifts it)
  filter <bucket> toggle a population bucket: lt1m | 1m-10m | gt10m
  clear           drop query, region and filters
  regions         list the regions present in the data
  show <code>     full record for a cca3 code
  logout          sign out and exit
  quit            exit
`

func loop(ctx context.Context, in *bufio.Scanner, runner *explorer.Runner, data *countries.Client, flow *auth.Flow) error {
	fmt.Print(usage)

	for {
		fmt.Print("> ")
		if !in.Scan() {
			return in.Err()
		}

		cmd, arg, _ := strings.Cut(strings.TrimSpace(in.Text()), " ")
		arg = strings.TrimSpace(arg)

		var err error
		switch strings.ToLower(cmd) {
		case "":
			continue
		case "search":
			err = runner.Search(ctx, arg)
		case "region":
			if arg == "" {
				arg = countries.RegionAll
			}
			err = runner.PickRegion(ctx, arg)
		case "filter":
			bucket := strings.ToLower(arg)
			switch bucket {
			case filter.PopulationLT1M, filter.PopulationM1M10, filter.PopulationGT10M:
				err = runner.ToggleFilter(ctx, filter.Clause{Type: filter.TypePopulation, Value: bucket})
			default:
				fmt.Println("unknown bucket; use lt1m, 1m-10m or gt10m")
				continue
			}
		case "clear":
			for _, c := range runner.State().Filters.Clauses() {
				if err = runner.ToggleFilter(ctx, c); err != nil {
					break
				}
			}
			if err == nil {
				err = runner.PickRegion(ctx, countries.RegionAll)
			}
			if err == nil {
				err = runner.Search(ctx, "")
			}
		case "regions":
			for _, r := range regionList(ctx, data) {
				fmt.Println(" ", r)
			}
			continue
		case "show":
			showCountry(ctx, data, strings.ToUpper(arg))
			continue
		case "help":
			fmt.Print(usage)
			continue
		case "logout":
			flow.Logout(ctx)
			fmt.Println("signed out")
			return nil
		case "quit", "exit":
			return nil
		default:
			fmt.Println("unknown command; try help")
			continue
		}

		if err != nil {
			fmt.Printf("load failed, previous view kept: %v\n", err)
			continue
		}
		render(runner.State())
	}
}

func regionList(ctx context.Context, data *countries.Client) []string {
	all, err := data.All(ctx)
	if err != nil {
		return []string{countries.RegionAll}
	}
	return countries.Regions(all)
}

func render(s explorer.State) {
	if len(s.Visible) == 0 {
		fmt.Println("no countries match")
		return
	}

	shown := s.Visible
	const limit = 20
	truncated := len(shown) > limit
	if truncated {
		shown = shown[:limit]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tREGION\tPOPULATION\tCAPITAL")
	for _, c := range shown {
		capital := ""
		if len(c.Capital) > 0 {
			capital = c.Capital[0]
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", c.Code, c.Name.Common, c.Region, c.Population, capital)
	}
	w.Flush()

	if truncated {
		fmt.Printf("… and %d more\n", len(s.Visible)-limit)
	}
	fmt.Printf("%d countries\n", len(s.Visible))
}

func printPermalink(params url.Values) {
	if len(params) == 0 {
		fmt.Println("permalink: /")
		return
	}
	fmt.Printf("permalink: /?%s\n", params.Encode())
}

func showCountry(ctx context.Context, data *countries.Client, code string) {
	if code == "" {
		fmt.Println("usage: show <cca3 code>")
		return
	}

	c, err := data.ByCode(ctx, code)
	if errors.Is(err, countries.ErrNotFound) {
		fmt.Printf("no country with code %s\n", code)
		return
	}
	if err != nil {
		fmt.Printf("load failed: %v\n", err)
		return
	}

	fmt.Printf("%s (%s)\n", c.Name.Common, c.Name.Official)
	fmt.Printf("  code:       %s\n", c.Code)
	fmt.Printf("  region:     %s / %s\n", c.Region, c.Subregion)
	fmt.Printf("  population: %d\n", c.Population)
	if len(c.Capital) > 0 {
		fmt.Printf("  capital:    %s\n", strings.Join(c.Capital, ", "))
	}
	if len(c.Currencies) > 0 {
		var names []string
		for cc, m := range c.Currencies {
			names = append(names, fmt.Sprintf("%s (%s)", m.Name, cc))
		}
		sort.Strings(names)
		fmt.Printf("  currencies: %s\n", strings.Join(names, ", "))
	}
	if len(c.Languages) > 0 {
		var langs []string
		for _, l := range c.Languages {
			langs = append(langs, l)
		}
		sort.Strings(langs)
		fmt.Printf("  languages:  %s\n", strings.Join(langs, ", "))
	}
	if len(c.Borders) > 0 {
		fmt.Printf("  borders:    %s\n", strings.Join(c.Borders, ", "))
	}
	if c.Flags.PNG != "" {
		fmt.Printf("  flag:       %s\n", c.Flags.PNG)
	}
	if c.Maps.GoogleMaps != "" {
		fmt.Printf("  map:        %s\n", c.Maps.GoogleMaps)
	}
}
