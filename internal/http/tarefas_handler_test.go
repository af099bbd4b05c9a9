package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"api-bi/internal/http/mocks"
	"api-bi/internal/service"
	"api-bi/internal/task"
)

func TestHandler_AtualizarBI(t *testing.T) {
	tests := []struct {
		name           string
		mockBehavior   func(ts *mocks.TarefaService)
		expectedStatus int
		expectedBody   string
	}{
		{
			// 202 mantido por compatibilidade mesmo com execução síncrona.
			name: "Sucesso vira 202",
			mockBehavior: func(ts *mocks.TarefaService) {
				ts.On("AtualizarBI", mock.Anything).
					Return(task.Outcome{Sucesso: true, Mensagem: "Atualização iniciada com sucesso"}, nil)
			},
			expectedStatus: http.StatusAccepted,
			expectedBody:   "sucesso",
		},
		{
			name: "Falha do schtasks vira 500",
			mockBehavior: func(ts *mocks.TarefaService) {
				ts.On("AtualizarBI", mock.Anything).
					Return(task.Outcome{Sucesso: false, Mensagem: "Erro ao executar: ERRO: acesso negado"}, nil)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "erro",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := new(mocks.TarefaService)
			tt.mockBehavior(ts)

			h := novoHandler(new(mocks.UsuarioService), ts)

			w := httptest.NewRecorder()
			h.Router().ServeHTTP(w, requisicaoAutenticada("POST", "/atualizar-bi", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)

			var body struct {
				Status    string `json:"status"`
				Timestamp string `json:"timestamp"`
				IPCliente string `json:"ip_cliente"`
			}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedBody, body.Status)
			assert.NotEmpty(t, body.Timestamp)
			assert.NotEmpty(t, body.IPCliente)
			ts.AssertExpectations(t)
		})
	}
}

func TestHandler_ExecutarTarefa(t *testing.T) {
	tests := []struct {
		name           string
		tarefa         string
		mockBehavior   func(ts *mocks.TarefaService)
		expectedStatus int
	}{
		{
			name:   "Sucesso vira 202 com o nome da tarefa",
			tarefa: "AtualizaBI_Financeiro",
			mockBehavior: func(ts *mocks.TarefaService) {
				ts.On("Executar", mock.Anything, "AtualizaBI_Financeiro").
					Return(task.Outcome{Sucesso: true, Mensagem: "ok"}, nil)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:   "Nome inválido vira 400",
			tarefa: "bad;name",
			mockBehavior: func(ts *mocks.TarefaService) {
				ts.On("Executar", mock.Anything, "bad;name").
					Return(task.Outcome{}, service.ErrBadRequest("Nome de tarefa inválido"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Falha de execução vira 500",
			tarefa: "AtualizaBI_TI",
			mockBehavior: func(ts *mocks.TarefaService) {
				ts.On("Executar", mock.Anything, "AtualizaBI_TI").
					Return(task.Outcome{Sucesso: false, Mensagem: "Timeout ao executar o comando"}, nil)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := new(mocks.TarefaService)
			tt.mockBehavior(ts)

			h := novoHandler(new(mocks.UsuarioService), ts)

			w := httptest.NewRecorder()
			h.Router().ServeHTTP(w, requisicaoAutenticada("POST", "/executar-tarefa/"+tt.tarefa, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)

			var body struct {
				Status string `json:"status"`
				Tarefa string `json:"tarefa"`
			}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.expectedStatus == http.StatusAccepted {
				assert.Equal(t, "sucesso", body.Status)
				assert.Equal(t, tt.tarefa, body.Tarefa)
			} else {
				assert.Equal(t, "erro", body.Status)
			}
			ts.AssertExpectations(t)
		})
	}
}

func TestHandler_ListarTarefas(t *testing.T) {
	ts := new(mocks.TarefaService)
	ts.On("Listar").Return([]string{"AtualizaBI_TI", "AtualizaBI_Financeiro"})

	h := novoHandler(new(mocks.UsuarioService), ts)

	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, requisicaoAutenticada("GET", "/tarefas", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Total      int      `json:"total"`
		Tarefas    []string `json:"tarefas"`
		Instrucoes string   `json:"instrucoes"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
	assert.Equal(t, []string{"AtualizaBI_TI", "AtualizaBI_Financeiro"}, body.Tarefas)
	assert.NotEmpty(t, body.Instrucoes)
	ts.AssertExpectations(t)
}
