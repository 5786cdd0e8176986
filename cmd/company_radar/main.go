package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/cobra"

	"github.com/iWorld-y/company_radar/pkg/config"
	"github.com/iWorld-y/company_radar/pkg/logger"
	"github.com/iWorld-y/company_radar/pkg/summarize"
)

var cfgPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "company_radar",
		Short:        "회사 정보 자동 요약 도구",
		Long:         "회사 이름(과 선택적 홈페이지 URL)으로 회사 개요, 인재상, 최근 비전을 수집·요약합니다.",
		RunE:         runPrompt,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "configs/config.yaml", "설정 파일 경로")
	root.AddCommand(newTUICmd())
	return root
}

// setup loads config, initializes logging and builds the summarizer with the
// strategies the configuration selects.
func setup(cmd *cobra.Command) (*summarize.CompanySummarizer, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.File); err != nil {
		return nil, err
	}
	return summarize.NewFromConfig(cmd.Context(), cfg)
}

func runPrompt(cmd *cobra.Command, _ []string) error {
	summarizer, err := setup(cmd)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Println("=== 회사 정보 자동 요약 도구 (CLI 버전) ===")

	fmt.Print("회사 이름을 입력하세요: ")
	companyName, _ := reader.ReadString('\n')
	companyName = strings.TrimSpace(companyName)

	fmt.Print("회사 공식 홈페이지 링크(선택, 없으면 엔터): ")
	companyURL, _ := reader.ReadString('\n')
	companyURL = strings.TrimSpace(companyURL)

	if companyName == "" {
		fmt.Println("회사 이름은 필수입니다. 프로그램을 종료합니다.")
		return nil
	}

	result, err := summarizer.Summarize(cmd.Context(), companyName, companyURL)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("[%s] 분석 결과\n", companyName)
	fmt.Println(strings.Repeat("=", 80))

	printSection("회사 개요", result.Overview)
	printSection("인재상 / 인재상 키워드", result.TalentProfile)
	printSection("최근 기사 기반 비전 / 전략", result.RecentVision)

	fmt.Println()
	fmt.Println("완료되었습니다. (이 결과를 기반으로 자소서/면접 준비에 활용해 보세요!)")
	return nil
}

func printSection(title, content string) {
	if content == "" {
		return
	}
	fmt.Println()
	fmt.Printf("--- %s ---\n", title)
	fmt.Println(wordwrap.WrapString(content, 100))
}
