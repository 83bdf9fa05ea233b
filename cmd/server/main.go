// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"mock-interview-go/internal/config"
	"mock-interview-go/internal/handler"
	"mock-interview-go/internal/middleware"
	"mock-interview-go/internal/prompt"
	"mock-interview-go/internal/repository"
	"mock-interview-go/internal/service"
	"mock-interview-go/pkg/leetcode"
	"mock-interview-go/pkg/llm"
	"mock-interview-go/pkg/log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
)

func main() {
	// 1. 解析启动参数
	configPath := pflag.String("config", "./configs/config.yaml", "配置文件路径")
	backendFlag := pflag.String("backend", "", "模型后端完整地址，优先级高于环境变量")
	modelFlag := pflag.String("model", "", "模型名称，优先级高于环境变量")
	hostFlag := pflag.String("host", "", "监听地址，覆盖配置文件")
	portFlag := pflag.String("port", "", "监听端口，覆盖配置文件")
	checkBackend := pflag.Bool("check-backend", false, "仅探测模型后端连通性后退出，不启动服务")
	pflag.Parse()

	// 2. 初始化配置和日志
	config.Init(*configPath)
	cfg := config.Conf
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync()

	// 3. 解析模型后端地址与模型名（进程生命周期内只解析一次）
	config.SetBackendOverride(*backendFlag)
	config.SetModelOverride(*modelFlag)
	backendURL := config.ResolveBackendURL()
	modelName := config.ResolveModel()
	log.Infof("模型后端: %s, 模型: %s", backendURL, modelName)

	llmClient := llm.NewClient(backendURL, modelName, time.Duration(cfg.LLM.TimeoutSeconds)*time.Second)

	// 连接测试模式：探测后端后直接退出
	if *checkBackend {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := llmClient.Ping(ctx); err != nil {
			log.Fatalf("模型后端连接失败: %v", err)
		}
		log.Infof("模型后端连接正常: %s", backendURL)
		return
	}

	// 4. 初始化依赖 (依赖注入)
	leetcodeClient := leetcode.NewClient(cfg.LeetCode.BaseURL, time.Duration(cfg.LeetCode.TimeoutSeconds)*time.Second)
	sessionRepo := repository.NewSessionRepository()
	problemService := service.NewProblemService(sessionRepo, leetcodeClient)
	interviewService := service.NewInterviewService(sessionRepo, llmClient, prompt.Default())
	summaryService := service.NewSummaryService(llmClient, prompt.DefaultSummary())

	// 5. 设置 Gin 模式并创建路由引擎
	gin.SetMode(cfg.Server.Mode)
	r := gin.New() // 使用 New() 创建一个不带默认中间件的引擎
	r.Use(middleware.RequestLogger(), middleware.CORS(), gin.Recovery())

	// 6. 注册路由（路径与历史前端契约保持一致）
	r.POST("/problem", handler.NewProblemHandler(problemService).SetProblem)
	r.POST("/set-language", handler.NewInterviewHandler(interviewService).SetLanguage)
	r.POST("/ask", handler.NewInterviewHandler(interviewService).Ask)
	r.POST("/summarize", handler.NewSummaryHandler(summaryService).Summarize)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 7. 启动 HTTP 服务器并实现优雅停机
	bindHost := cfg.Server.Host
	if *hostFlag != "" {
		bindHost = *hostFlag
	}
	bindPort := cfg.Server.Port
	if *portFlag != "" {
		bindPort = *portFlag
	}
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", bindHost, bindPort),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP 服务器关闭失败: %v", err)
	}
	log.Info("服务已优雅关闭")
}
